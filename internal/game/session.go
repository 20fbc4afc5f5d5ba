package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monbound/internal/battle"
	"github.com/samdwyer/monbound/internal/camera"
	"github.com/samdwyer/monbound/internal/combat"
	"github.com/samdwyer/monbound/internal/encounter"
	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/gamedata"
	"github.com/samdwyer/monbound/internal/movement"
	"github.com/samdwyer/monbound/internal/schedule"
	"github.com/samdwyer/monbound/internal/telemetry"
	"github.com/samdwyer/monbound/internal/trainer"
	"github.com/samdwyer/monbound/internal/world"
)

// Session owns all simulation state. It is driven by one goroutine through
// Tick and the intent methods, and needs no locking.
type Session struct {
	cfg     Config
	mapName string
	grid    *world.Grid
	catalog *gamedata.CreatureRegistry

	seedLabel string
	seed      int64
	rng       *rand.Rand

	sched      *schedule.Scheduler
	mover      *movement.Controller
	cam        *camera.Camera
	team       *entity.Team
	trainers   *trainer.Directory
	encounters *encounter.Resolver
	battle     *battle.Engine
	log        MessageLog

	mode     Mode
	paused   bool
	backpack bool
	held     [len(world.Directions)]bool
}

var _ battle.Listener = (*Session)(nil)

// LoadSession builds a session from the embedded catalog and the configured map.
func LoadSession(cfg Config) (*Session, error) {
	catalog, err := gamedata.LoadCreatureRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load creatures: %w", err)
	}
	maps, err := gamedata.LoadMapRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load maps: %w", err)
	}
	mapDef := maps.GetByID(cfg.MapID)
	if mapDef == nil {
		return nil, fmt.Errorf("unknown map %q", cfg.MapID)
	}
	return NewSession(cfg, catalog, mapDef)
}

// NewSession creates a session in menu mode. StartNewSession begins play.
func NewSession(cfg Config, catalog *gamedata.CreatureRegistry, mapDef *gamedata.MapDef) (*Session, error) {
	if catalog == nil || catalog.Count() == 0 {
		return nil, errors.New("creature catalog is empty")
	}
	if catalog.Count() < 2 {
		return nil, errors.New("creature catalog needs at least two creatures for a starting team")
	}
	grid, err := mapDef.Grid()
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		mapName: mapDef.Name,
		grid:    grid,
		catalog: catalog,
		sched:   schedule.New(),
		mover:   movement.NewController(grid, cfg.MoveSpeed),
		cam:     camera.New(grid.Width, grid.Height, cfg.ViewportWidth, cfg.ViewportHeight, cfg.CameraLerp),
		mode:    ModeMenu,
	}
	s.log.Reset("Press Enter to set out. Q quits.")
	return s, nil
}

// SeedFromString hashes a seed label into a math/rand seed.
// An empty label falls back to the clock.
func SeedFromString(label string) int64 {
	if label == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(label))
}

// StartNewSession discards any running session and starts a fresh one with a
// new team, fresh trainers and the player on the start tile.
func (s *Session) StartNewSession(ctx context.Context, seed string) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.start")
	defer span.End()

	s.teardown()

	s.seedLabel = seed
	s.seed = SeedFromString(seed)
	s.rng = rand.New(rand.NewSource(s.seed))

	s.encounters = encounter.NewResolver(s.catalog, s.rng, s.cfg.EncounterChance)
	s.team = entity.NewTeam(
		s.encounters.Spawn(s.catalog.At(0), 0),
		s.encounters.Spawn(s.catalog.At(1), 0),
	)
	s.battle = battle.NewEngine(s.team, combat.NewResolver(s.rng), s.sched, s, s.cfg.FoeDelay)
	s.spawnTrainers()
	s.placeAtStart()

	s.mode = ModeExplore
	s.log.Reset(
		"Use the arrow keys or WASD to explore. Step into grass to trigger a battle.",
		fmt.Sprintf("You arrive at %s. Creatures hum with energy in the grass.", s.mapName),
	)

	span.SetAttributes(
		attribute.String("seed", seed),
		attribute.Int64("seed.value", s.seed),
		attribute.String("map", s.mapName),
		attribute.Int("trainers", len(s.trainers.Trainers())),
		attribute.Int("team.size", len(s.team.Members)),
	)
}

// ResetToStart heals the team, recreates every trainer and returns the player
// to the start tile. Team levels are kept.
func (s *Session) ResetToStart(ctx context.Context) {
	if s.mode != ModeExplore {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.reset")
	defer span.End()

	defeated := 0
	for _, t := range s.trainers.Trainers() {
		if t.Defeated {
			defeated++
		}
	}

	s.battle.Abort()
	s.trainers.Close()
	s.spawnTrainers()
	s.team.HealAll()
	s.placeAtStart()

	s.log.Reset(
		"Use the arrow keys or WASD to move. Wander in the grass to find encounters.",
		"Your team regroups at the island gate with renewed focus.",
	)

	span.SetAttributes(
		attribute.Int("trainers.cleared", defeated),
		attribute.Int("team.total_hp", s.team.TotalHP()),
	)
}

// ReturnToMenu ends the session and shows the title menu.
func (s *Session) ReturnToMenu() {
	s.teardown()
	s.mode = ModeMenu
	s.log.Reset("Press Enter to set out. Q quits.")
}

// teardown aborts the battle and cancels every timer.
func (s *Session) teardown() {
	if s.battle != nil {
		s.battle.Abort()
	}
	if s.trainers != nil {
		s.trainers.Close()
	}
	s.sched.Clear()
	s.paused = false
	s.backpack = false
	s.clearHeld()
}

func (s *Session) spawnTrainers() {
	s.trainers = trainer.NewDirectory(s.grid, s.rng, s.sched, trainer.Options{
		SightRange: s.cfg.SightRange,
		RotateMin:  s.cfg.RotateMin,
		RotateMax:  s.cfg.RotateMax,
	})
	s.trainers.Arm()
}

// placeAtStart closes overlays, moves the player to the start tile and
// snaps the camera.
func (s *Session) placeAtStart() {
	s.paused = false
	s.backpack = false
	s.clearHeld()
	s.mover.Reset(s.grid.Start())
	p := s.mover.Position()
	s.cam.Snap(p.X, p.Y)
}

// Tick advances the simulation by dt of wall time.
func (s *Session) Tick(ctx context.Context, dt time.Duration) {
	if s.mode != ModeExplore {
		return
	}
	if dt > s.cfg.MaxFrameDelta {
		dt = s.cfg.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}

	if !s.overlayOpen() {
		s.sched.Advance(dt)
	}

	if s.canExplore() {
		if entry, ok := s.mover.Step(s.heldVector(), dt.Seconds()); ok {
			s.enterTile(ctx, entry)
		}
	}

	if s.canExplore() {
		tx, ty := s.mover.Tile()
		if d := s.encounters.Watch(ctx, s.trainers, tx, ty); d.Kind == encounter.KindBattle {
			s.startBattle(ctx, d)
		}
	}

	p := s.mover.Position()
	s.cam.Update(p.X, p.Y)
}

func (s *Session) enterTile(ctx context.Context, entry movement.TileEntry) {
	d := s.encounters.TileEntered(ctx, entry)
	switch d.Kind {
	case encounter.KindHeal:
		s.team.HealAll()
		s.log.Add("A warm lantern light heals your team in the plaza.")
	case encounter.KindBattle:
		s.startBattle(ctx, d)
	}
}

func (s *Session) startBattle(ctx context.Context, d encounter.Decision) {
	if s.battle.Start(ctx, d.Opponent, d.TrainerID) {
		s.clearHeld()
	}
}

// overlayOpen reports whether pause or the backpack is up.
func (s *Session) overlayOpen() bool {
	return s.paused || s.backpack
}

// canExplore reports whether movement and sight checks may run.
func (s *Session) canExplore() bool {
	return s.mode == ModeExplore && !s.overlayOpen() && !s.battle.Active()
}

// SetDirection records a direction key press or release. Presses are
// ignored while movement is suspended.
func (s *Session) SetDirection(dir world.Direction, held bool) {
	if int(dir) < 0 || int(dir) >= len(s.held) {
		return
	}
	if held && !s.canExplore() {
		return
	}
	s.held[dir] = held
}

func (s *Session) heldVector() movement.Vec {
	var dirs []world.Direction
	for _, d := range world.Directions {
		if s.held[d] {
			dirs = append(dirs, d)
		}
	}
	return movement.Combine(dirs...)
}

func (s *Session) clearHeld() {
	s.held = [len(world.Directions)]bool{}
}

// TogglePause opens or closes the pause overlay. Opening it closes the backpack.
func (s *Session) TogglePause() {
	if s.mode != ModeExplore {
		return
	}
	s.paused = !s.paused
	s.backpack = false
	if s.paused {
		s.clearHeld()
	}
}

// ToggleBackpack opens or closes the backpack overlay. Opening it closes pause.
func (s *Session) ToggleBackpack() {
	if s.mode != ModeExplore {
		return
	}
	s.backpack = !s.backpack
	s.paused = false
	if s.backpack {
		s.clearHeld()
	}
}

// UseAbility forwards an ability choice to the battle.
func (s *Session) UseAbility(ctx context.Context, i int) bool {
	if s.mode != ModeExplore || s.overlayOpen() {
		return false
	}
	return s.battle.UseAbility(ctx, i)
}

// Flee forwards a flee request to the battle.
func (s *Session) Flee(ctx context.Context) bool {
	if s.mode != ModeExplore || s.overlayOpen() {
		return false
	}
	return s.battle.Flee(ctx)
}

// SelectLead makes team member i the lead. Only allowed outside battle.
func (s *Session) SelectLead(i int) bool {
	if s.mode != ModeExplore || s.battle.Active() {
		return false
	}
	if !s.team.SetActive(i) {
		return false
	}
	s.log.Add(fmt.Sprintf("%s takes the lead.", s.team.Members[i].Name))
	return true
}

// Message implements battle.Listener.
func (s *Session) Message(text string) {
	s.log.Add(text)
}

// BattleEnded implements battle.Listener.
func (s *Session) BattleEnded(_ context.Context, result battle.Result) {
	switch result.Outcome {
	case battle.OutcomeVictory:
		if result.TrainerID != "" {
			s.trainers.MarkDefeated(result.TrainerID)
		}
	case battle.OutcomeDefeat:
		s.clearHeld()
		s.mover.Reset(s.grid.Start())
	}
}

// Mode returns the current top-level mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Seed returns the session's numeric seed.
func (s *Session) Seed() int64 {
	return s.seed
}
