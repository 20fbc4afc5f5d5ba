// Package movement integrates the player's continuous position over the tile grid.
package movement

import (
	"math"

	"github.com/samdwyer/monbound/internal/world"
)

const (
	// DefaultSpeed is the player's speed in tiles per second.
	DefaultSpeed = 4.5
	// Margin keeps the player's footprint off the grid edge.
	Margin = 0.25
)

// Vec is a real-valued 2D vector in tile units.
type Vec struct {
	X, Y float64
}

// Len returns the vector length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the same direction, or zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Combine adds the unit deltas of the held directions and renormalizes,
// so diagonals move no faster than a single axis. Opposing directions cancel.
func Combine(dirs ...world.Direction) Vec {
	var sum Vec
	for _, d := range dirs {
		dx, dy := d.Delta()
		sum.X += float64(dx)
		sum.Y += float64(dy)
	}
	return sum.Normalize()
}

// TileEntry is raised when the player's integer tile changes.
type TileEntry struct {
	X, Y   int
	Symbol rune
	Type   world.TileType
}

// Controller owns the player's position.
type Controller struct {
	grid  *world.Grid
	speed float64
	pos   Vec
	tileX int
	tileY int
}

// NewController places the player at the centre of the grid's start tile.
func NewController(grid *world.Grid, speed float64) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	c := &Controller{grid: grid, speed: speed}
	c.Reset(grid.Start())
	return c
}

// Position returns the player's continuous position.
func (c *Controller) Position() Vec {
	return c.pos
}

// Tile returns the player's current tile coordinate.
func (c *Controller) Tile() (int, int) {
	return c.tileX, c.tileY
}

// Speed returns the movement speed in tiles per second.
func (c *Controller) Speed() float64 {
	return c.speed
}

// Reset moves the player to the centre of a tile without raising an entry.
func (c *Controller) Reset(tileX, tileY int) {
	c.pos = Vec{X: float64(tileX) + 0.5, Y: float64(tileY) + 0.5}
	c.tileX, c.tileY = tileX, tileY
}

// CanOccupy reports whether p is inside the clamped bounds and off walls.
func (c *Controller) CanOccupy(p Vec) bool {
	w, h := float64(c.grid.Width), float64(c.grid.Height)
	if p.X < Margin || p.X >= w-Margin || p.Y < Margin || p.Y >= h-Margin {
		return false
	}
	return !c.grid.IsWall(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Step advances the player along dir for dt seconds. dir is normalized
// before scaling. A blocked destination leaves the position unchanged.
// When the integer tile changes, Step returns the entry and true.
func (c *Controller) Step(dir Vec, dt float64) (TileEntry, bool) {
	dir = dir.Normalize()
	if dt <= 0 || (dir.X == 0 && dir.Y == 0) {
		return TileEntry{}, false
	}

	next := Vec{
		X: c.pos.X + dir.X*c.speed*dt,
		Y: c.pos.Y + dir.Y*c.speed*dt,
	}
	if !c.CanOccupy(next) {
		return TileEntry{}, false
	}

	c.pos = next
	tx, ty := int(math.Floor(next.X)), int(math.Floor(next.Y))
	if tx == c.tileX && ty == c.tileY {
		return TileEntry{}, false
	}

	c.tileX, c.tileY = tx, ty
	return TileEntry{
		X:      tx,
		Y:      ty,
		Symbol: c.grid.Symbol(tx, ty),
		Type:   c.grid.Type(tx, ty),
	}, true
}
