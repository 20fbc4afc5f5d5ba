// Package combat provides damage resolution for turn-based battles.
package combat

import (
	"fmt"
	"math"
)

// Combatant is the interface for any creature that can take part in a battle.
// Both team members and foes implement this interface.
type Combatant interface {
	GetName() string
	GetLevel() int
	IsAlive() bool
	GetHP() int
	GetMaxHP() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Rand is the random source used for damage variance and foe choices.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Rule describes one side's damage formula:
//
//	damage = max(Floor, round(power + level*LevelScale + U[0, Spread)))
type Rule struct {
	Floor      int
	LevelScale float64
	Spread     float64
}

var (
	// PlayerRule applies to attacks by the player's active creature.
	PlayerRule = Rule{Floor: 4, LevelScale: 0.8, Spread: 3}
	// FoeRule applies to attacks by the opponent.
	FoeRule = Rule{Floor: 3, LevelScale: 0.7, Spread: 2}
)

// Result contains the outcome of resolving an attack.
type Result struct {
	Damage  int    // Computed damage before HP flooring
	Dealt   int    // HP actually removed from the target
	Fainted bool   // Target dropped to 0 HP
	Message string // Human-readable description
}

// Resolver calculates and applies attack damage.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver drawing variance from rng.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// RoundHalfUp rounds x to the nearest integer, with halves rounding up.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Damage calculates damage for an attack without applying it.
func (r *Resolver) Damage(rule Rule, power int, user Combatant) int {
	raw := float64(power) + float64(user.GetLevel())*rule.LevelScale + r.rng.Float64()*rule.Spread
	damage := RoundHalfUp(raw)
	if damage < rule.Floor {
		damage = rule.Floor
	}
	return damage
}

// Resolve applies an attack from user to target and returns the result.
// The faint check reads the target after the HP change.
func (r *Resolver) Resolve(rule Rule, ability string, power int, user, target Combatant) Result {
	damage := r.Damage(rule, power, user)
	dealt := target.TakeDamage(damage)
	return Result{
		Damage:  damage,
		Dealt:   dealt,
		Fainted: !target.IsAlive(),
		Message: fmt.Sprintf("%s used %s! (%d dmg)", user.GetName(), ability, damage),
	}
}

// Choose returns a uniform index in [0, n). It returns 0 when n <= 0.
func (r *Resolver) Choose(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
