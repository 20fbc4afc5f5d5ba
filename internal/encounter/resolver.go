// Package encounter decides what happens when the player enters a tile or
// walks into a trainer's sight line.
package encounter

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/gamedata"
	"github.com/samdwyer/monbound/internal/movement"
	"github.com/samdwyer/monbound/internal/telemetry"
	"github.com/samdwyer/monbound/internal/trainer"
	"github.com/samdwyer/monbound/internal/world"
)

const (
	// DefaultChance is the probability that a grass entry starts a battle.
	DefaultChance = 0.35

	baseLevel   = 3
	levelSpread = 3
	// trainerBonus is the extra level trainer creatures get over wild ones.
	trainerBonus = 1
)

// Rand is the random source for rolls, catalog picks and creature IDs.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Read(p []byte) (int, error)
}

// Kind is the outcome class of an encounter check.
type Kind int

const (
	// KindNone - nothing happens
	KindNone Kind = iota
	// KindHeal - the player stepped into town
	KindHeal
	// KindBattle - a wild or trainer battle starts with Decision.Opponent
	KindBattle
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindHeal:
		return "heal"
	case KindBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Decision is what the session should do after an encounter check.
type Decision struct {
	Kind      Kind
	Opponent  *entity.Creature // Set for KindBattle
	TrainerID string           // Empty for wild battles
}

// Resolver rolls encounters and generates opponents.
type Resolver struct {
	catalog *gamedata.CreatureRegistry
	rng     Rand
	chance  float64
}

// NewResolver creates a resolver. A chance outside (0, 1] uses DefaultChance.
func NewResolver(catalog *gamedata.CreatureRegistry, rng Rand, chance float64) *Resolver {
	if chance <= 0 || chance > 1 {
		chance = DefaultChance
	}
	return &Resolver{catalog: catalog, rng: rng, chance: chance}
}

// TileEntered handles a tile-entry event. Town heals unconditionally and
// grass draws one roll per entry.
func (r *Resolver) TileEntered(ctx context.Context, entry movement.TileEntry) Decision {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.tile")
	defer span.End()
	span.SetAttributes(
		attribute.String("tile", entry.Type.String()),
		attribute.Int("x", entry.X),
		attribute.Int("y", entry.Y),
	)

	var d Decision
	switch entry.Type {
	case world.TypeTown:
		d = Decision{Kind: KindHeal}
	case world.TypeGrass:
		roll := r.rng.Float64()
		span.SetAttributes(attribute.Float64("roll", roll))
		if roll < r.chance {
			d = Decision{Kind: KindBattle, Opponent: r.Spawn(r.catalog.Pick(r.rng), 0)}
		}
	}

	span.SetAttributes(attribute.String("decision", d.Kind.String()))
	return d
}

// Watch runs the sight check for the player's tile and returns a trainer
// battle for the first trainer that spots the player.
func (r *Resolver) Watch(ctx context.Context, trainers *trainer.Directory, px, py int) Decision {
	t := trainers.Spot(px, py)
	if t == nil {
		return Decision{}
	}
	return r.Sighted(ctx, t)
}

// Sighted builds the battle for a trainer that spotted the player.
func (r *Resolver) Sighted(ctx context.Context, t *trainer.Trainer) Decision {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.sighted")
	defer span.End()

	opponent := r.Spawn(r.catalog.Pick(r.rng), trainerBonus)
	span.SetAttributes(
		attribute.String("trainer", t.ID),
		attribute.String("facing", t.Facing.String()),
		attribute.String("opponent", opponent.Name),
		attribute.Int("opponent_level", opponent.Level),
	)
	return Decision{Kind: KindBattle, Opponent: opponent, TrainerID: t.ID}
}

// Spawn creates a full-health creature at level 3 + U{0,1,2} + bonus.
func (r *Resolver) Spawn(def *gamedata.CreatureDef, bonus int) *entity.Creature {
	level := baseLevel + r.rng.Intn(levelSpread) + bonus
	return entity.NewCreature(def, level, r.newID())
}

// newID draws the creature ID from the session random source, so seeded
// sessions reproduce the same IDs.
func (r *Resolver) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(r.rng)
	if err != nil {
		return uuid.New()
	}
	return id
}
