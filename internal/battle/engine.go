// Package battle runs the turn-based fight between the player's team and one opponent.
package battle

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monbound/internal/combat"
	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/schedule"
	"github.com/samdwyer/monbound/internal/telemetry"
)

const (
	// FoeTurnKey is the scheduler key of the pending foe action.
	FoeTurnKey = "battle/foe"
	// DefaultFoeDelay is the pause between the player's move and the foe's reply.
	DefaultFoeDelay = 450 * time.Millisecond
)

// Phase represents whose move it is.
type Phase int

const (
	// PhaseIdle - no battle in progress
	PhaseIdle Phase = iota
	// PhasePlayerTurn - waiting for the player to pick an ability or flee
	PhasePlayerTurn
	// PhaseFoeTurn - the foe's action is pending
	PhaseFoeTurn
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseFoeTurn:
		return "foe_turn"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	// OutcomeVictory - the opponent fainted
	OutcomeVictory Outcome = iota
	// OutcomeFled - the player ran; a trainer stays undefeated
	OutcomeFled
	// OutcomeDefeat - every team member fainted
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeFled:
		return "fled"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Result is reported to the listener when a battle closes.
type Result struct {
	Outcome   Outcome
	TrainerID string // Empty for wild battles
	Opponent  *entity.Creature
	Turns     int
}

// Listener receives battle messages and outcomes.
type Listener interface {
	Message(text string)
	BattleEnded(ctx context.Context, result Result)
}

// State holds all state for the battle in progress.
type State struct {
	Phase     Phase
	Opponent  *entity.Creature
	TrainerID string
	TurnCount int
}

// IsTrainer reports whether the opponent belongs to a trainer.
func (s *State) IsTrainer() bool {
	return s.TrainerID != ""
}

// Engine is the battle state machine. At most one battle is live at a time.
type Engine struct {
	team     *entity.Team
	resolver *combat.Resolver
	sched    *schedule.Scheduler
	listener Listener
	foeDelay time.Duration

	state *State
	// ctx carries the battle span into the deferred foe action.
	ctx context.Context
}

// NewEngine creates an idle engine for the team.
func NewEngine(team *entity.Team, resolver *combat.Resolver, sched *schedule.Scheduler, listener Listener, foeDelay time.Duration) *Engine {
	if foeDelay < 0 {
		foeDelay = DefaultFoeDelay
	}
	return &Engine{
		team:     team,
		resolver: resolver,
		sched:    sched,
		listener: listener,
		foeDelay: foeDelay,
	}
}

// Active reports whether a battle is in progress.
func (e *Engine) Active() bool {
	return e.state != nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	if e.state == nil {
		return PhaseIdle
	}
	return e.state.Phase
}

// State returns the battle in progress, or nil.
func (e *Engine) State() *State {
	return e.state
}

// Start opens a battle. It is refused while another battle is active.
func (e *Engine) Start(ctx context.Context, opponent *entity.Creature, trainerID string) bool {
	if e.state != nil || opponent == nil || e.team.IsDefeated() {
		return false
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("opponent", opponent.Name),
		attribute.Int("opponent_level", opponent.Level),
		attribute.String("trainer", trainerID),
		attribute.Int("team_alive", e.team.AliveCount()),
	)
	span.End()

	if lead := e.team.ActiveMember(); lead == nil || !lead.IsAlive() {
		e.team.Active = e.team.FirstAlive()
	}

	e.ctx = ctx
	e.state = &State{
		Phase:     PhasePlayerTurn,
		Opponent:  opponent,
		TrainerID: trainerID,
	}

	if trainerID != "" {
		e.say(fmt.Sprintf("A trainer spotted you and sent out %s!", opponent.Name))
	} else {
		e.say(fmt.Sprintf("A wild %s appeared!", opponent.Name))
	}
	return true
}

// UseAbility has the active creature attack with ability i. It is a no-op
// unless a battle is active, it is the player's turn and i is valid.
func (e *Engine) UseAbility(ctx context.Context, i int) bool {
	if e.state == nil || e.state.Phase != PhasePlayerTurn || e.state.Opponent == nil {
		return false
	}
	member := e.team.ActiveMember()
	if member == nil || !member.IsAlive() {
		return false
	}
	ability, ok := member.Ability(i)
	if !ok {
		return false
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	opponent := e.state.Opponent
	result := e.resolver.Resolve(combat.PlayerRule, ability.Name, ability.Power, member, opponent)
	e.state.TurnCount++
	e.say(result.Message)

	span.SetAttributes(
		attribute.String("actor", member.Name),
		attribute.String("ability", ability.Name),
		attribute.Int("damage", result.Damage),
		attribute.Int("turn", e.state.TurnCount),
		attribute.Bool("fainted", result.Fainted),
	)

	if result.Fainted {
		member.LevelUp()
		var msg string
		if e.state.IsTrainer() {
			msg = fmt.Sprintf("The trainer's %s was pacified. %s grew to level %d!", opponent.Name, member.Name, member.Level)
		} else {
			msg = fmt.Sprintf("The wild %s was pacified. Your team gained confidence!", opponent.Name)
		}
		e.close(ctx, OutcomeVictory, msg)
		return true
	}

	e.state.Phase = PhaseFoeTurn
	e.sched.After(FoeTurnKey, e.foeDelay, e.foeTurn)
	return true
}

// foeTurn runs the opponent's deferred action.
func (e *Engine) foeTurn() {
	if e.state == nil || e.state.Phase != PhaseFoeTurn || e.state.Opponent == nil {
		return
	}
	member := e.team.ActiveMember()
	if member == nil {
		return
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(e.ctx, "battle.foe_turn")
	defer span.End()

	opponent := e.state.Opponent
	ability, _ := opponent.Ability(e.resolver.Choose(len(opponent.Abilities)))
	result := e.resolver.Resolve(combat.FoeRule, ability.Name, ability.Power, opponent, member)
	e.state.TurnCount++

	prefix := "Wild " + opponent.Name
	if e.state.IsTrainer() {
		prefix = "The trainer's " + opponent.Name
	}
	e.say(fmt.Sprintf("%s strikes with %s! (%d dmg)", prefix, ability.Name, result.Damage))

	span.SetAttributes(
		attribute.String("actor", opponent.Name),
		attribute.String("ability", ability.Name),
		attribute.String("target", member.Name),
		attribute.Int("damage", result.Damage),
		attribute.Bool("fainted", result.Fainted),
	)

	if result.Fainted {
		next := e.team.FirstAlive()
		if next == -1 {
			e.team.HealAll()
			e.close(ctx, OutcomeDefeat, "Your team is out of stamina. You retreat to the island gate to recover.")
			return
		}
		e.team.Active = next
		e.say(fmt.Sprintf("%s needs rest. %s steps up!", member.Name, e.team.Members[next].Name))
	}

	e.state.Phase = PhasePlayerTurn
}

// Flee ends the battle without touching any creature. A trainer stays undefeated.
func (e *Engine) Flee(ctx context.Context) bool {
	if e.state == nil {
		return false
	}
	msg := "You retreat to rethink your approach. The wild creature wanders off."
	if e.state.IsTrainer() {
		msg = "You slip away. The trainer will be watching for a rematch."
	}
	e.close(ctx, OutcomeFled, msg)
	return true
}

// Abort drops the battle silently, for session resets.
func (e *Engine) Abort() {
	e.sched.Cancel(FoeTurnKey)
	e.state = nil
	e.ctx = nil
}

// close ends the battle and notifies the listener.
func (e *Engine) close(ctx context.Context, outcome Outcome, msg string) {
	result := Result{
		Outcome:   outcome,
		TrainerID: e.state.TrainerID,
		Opponent:  e.state.Opponent,
		Turns:     e.state.TurnCount,
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", result.Turns),
		attribute.Int("team_hp_remaining", e.team.TotalHP()),
	)
	span.End()

	e.sched.Cancel(FoeTurnKey)
	e.state = nil
	e.ctx = nil
	e.say(msg)

	if e.listener != nil {
		e.listener.BattleEnded(ctx, result)
	}
}

func (e *Engine) say(msg string) {
	if e.listener != nil {
		e.listener.Message(msg)
	}
}
