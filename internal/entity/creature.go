// Package entity provides the creatures the player and foes battle with.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/monbound/internal/combat"
	"github.com/samdwyer/monbound/internal/gamedata"
)

const (
	// MaxHPBase is the max HP every creature has before level scaling.
	MaxHPBase = 28
	// HPPerLevel is the max HP granted per level at creation.
	HPPerLevel = 2

	// Victory growth.
	levelUpMaxHP = 3
	levelUpHeal  = 6
)

// Ability is a named attack.
type Ability struct {
	Name  string
	Power int
}

// Creature is a battling spirit, either a team member or a foe.
type Creature struct {
	ID        uuid.UUID
	DefID     string // Catalog identifier
	Name      string
	Type      string // Elemental type
	Color     tcell.Color
	Level     int
	HP, MaxHP int
	Abilities []Ability
}

// MaxHPForLevel returns the creation max HP for a level.
func MaxHPForLevel(level int) int {
	return MaxHPBase + level*HPPerLevel
}

// NewCreature creates a full-health creature from a catalog definition.
func NewCreature(def *gamedata.CreatureDef, level int, id uuid.UUID) *Creature {
	if level < 1 {
		level = 1
	}
	abilities := make([]Ability, len(def.Abilities))
	for i, a := range def.Abilities {
		abilities[i] = Ability{Name: a.Name, Power: a.Power}
	}
	maxHP := MaxHPForLevel(level)
	return &Creature{
		ID:        id,
		DefID:     def.ID,
		Name:      def.Name,
		Type:      def.Type,
		Color:     def.TCellColor(),
		Level:     level,
		HP:        maxHP,
		MaxHP:     maxHP,
		Abilities: abilities,
	}
}

// Ability returns the ability at index i, or false if out of range.
func (c *Creature) Ability(i int) (Ability, bool) {
	if i < 0 || i >= len(c.Abilities) {
		return Ability{}, false
	}
	return c.Abilities[i], true
}

// Restore sets HP back to max.
func (c *Creature) Restore() {
	c.HP = c.MaxHP
}

// LevelUp applies victory growth: +1 level, +3 max HP, and up to 6 HP healed.
func (c *Creature) LevelUp() {
	c.Level++
	c.MaxHP += levelUpMaxHP
	c.HP += levelUpHeal
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the creature's name.
func (c *Creature) GetName() string { return c.Name }

// GetLevel returns the creature's level.
func (c *Creature) GetLevel() int { return c.Level }

// IsAlive returns true if the creature has HP remaining.
func (c *Creature) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Creature) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Creature) GetMaxHP() int { return c.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (c *Creature) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (c *Creature) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	c.HP += actual
	return actual
}

// Ensure Creature implements combat.Combatant
var _ combat.Combatant = (*Creature)(nil)
