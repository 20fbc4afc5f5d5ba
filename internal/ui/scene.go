package ui

import (
	"github.com/samdwyer/monbound/internal/battle"
	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/movement"
	"github.com/samdwyer/monbound/internal/world"
)

// Scene is a read-only picture of a session. Pointers in it must not be mutated.
type Scene struct {
	Menu     bool
	Paused   bool
	Backpack bool
	MapName  string
	Seed     string

	Grid         *world.Grid
	Player       movement.Vec
	TileX, TileY int
	Tile         world.TileType

	CameraX, CameraY      float64
	ViewWidth, ViewHeight int

	Team     []*entity.Creature
	Active   int
	Trainers []TrainerView
	Battle   *BattleView // nil outside battle
	Messages []string    // Newest first
}

// TrainerView describes one trainer and the tiles it currently watches.
type TrainerView struct {
	ID       string
	X, Y     int
	Facing   world.Direction
	Defeated bool
	Sight    []world.Point
}

// BattleView describes the battle in progress.
type BattleView struct {
	Phase     battle.Phase
	Opponent  *entity.Creature
	TrainerID string
	Turn      int
}

// Watched reports whether any live trainer's sight line covers (x, y).
func (s *Scene) Watched(x, y int) bool {
	for _, t := range s.Trainers {
		for _, p := range t.Sight {
			if p.X == x && p.Y == y {
				return true
			}
		}
	}
	return false
}
