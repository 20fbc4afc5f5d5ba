package movement

import (
	"math"
	"math/rand"
	"testing"

	"github.com/samdwyer/monbound/internal/world"
)

var testRows = []string{
	"S.G.",
	".#T.",
	"....",
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	g, err := world.NewGrid(testRows, nil)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	return NewController(g, 4)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		dirs []world.Direction
		x, y float64
	}{
		{"none", nil, 0, 0},
		{"right", []world.Direction{world.Right}, 1, 0},
		{"up", []world.Direction{world.Up}, 0, -1},
		{"opposite", []world.Direction{world.Left, world.Right}, 0, 0},
		{"diagonal", []world.Direction{world.Down, world.Right}, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		v := Combine(tt.dirs...)
		if !near(v.X, tt.x) || !near(v.Y, tt.y) {
			t.Errorf("Combine(%s) = %+v, want (%v,%v)", tt.name, v, tt.x, tt.y)
		}
	}
}

func TestDiagonalSpeed(t *testing.T) {
	c := newTestController(t)
	start := c.Position()

	c.Step(Combine(world.Down, world.Right), 0.1)
	moved := Vec{X: c.Position().X - start.X, Y: c.Position().Y - start.Y}.Len()

	if !near(moved, 0.4) {
		t.Errorf("diagonal step moved %v, want 0.4", moved)
	}
}

func TestStepWithinTile(t *testing.T) {
	c := newTestController(t)

	if _, entered := c.Step(Vec{X: 1}, 0.05); entered {
		t.Error("small step should not enter a new tile")
	}
	if p := c.Position(); !near(p.X, 0.7) || !near(p.Y, 0.5) {
		t.Errorf("Position() = %+v, want (0.7,0.5)", p)
	}
}

func TestStepEntersTile(t *testing.T) {
	c := newTestController(t)

	entry, entered := c.Step(Vec{X: 1}, 0.15)
	if !entered {
		t.Fatal("crossing x=1 should raise a tile entry")
	}
	if entry.X != 1 || entry.Y != 0 || entry.Symbol != '.' || entry.Type != world.TypeTrail {
		t.Errorf("entry = %+v", entry)
	}

	// Crossing into grass
	c.Reset(1, 0)
	entry, entered = c.Step(Vec{X: 1}, 0.2)
	if !entered || entry.Type != world.TypeGrass || entry.Symbol != 'G' {
		t.Errorf("expected grass entry, got %+v (%v)", entry, entered)
	}
}

func TestWallBlocks(t *testing.T) {
	c := newTestController(t)
	c.Reset(1, 0) // directly above the wall at (1,1)
	before := c.Position()

	if _, entered := c.Step(Vec{Y: 1}, 0.2); entered {
		t.Error("blocked step should not raise an entry")
	}
	if c.Position() != before {
		t.Errorf("blocked step moved player to %+v", c.Position())
	}
}

func TestBoundsBlock(t *testing.T) {
	c := newTestController(t)
	before := c.Position()

	// 0.5 - 0.4 = 0.1 < Margin
	c.Step(Vec{X: -1}, 0.1)
	if c.Position() != before {
		t.Errorf("step past the margin moved player to %+v", c.Position())
	}

	// A shorter step that stays inside the margin is allowed
	c.Step(Vec{X: -1}, 0.05)
	if p := c.Position(); !near(p.X, 0.3) {
		t.Errorf("Position().X = %v, want 0.3", p.X)
	}
}

func TestRandomWalkStaysInBounds(t *testing.T) {
	c := newTestController(t)
	g := world.MustNewGrid(testRows, nil)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		var dirs []world.Direction
		for _, d := range world.Directions {
			if rng.Intn(2) == 0 {
				dirs = append(dirs, d)
			}
		}
		c.Step(Combine(dirs...), rng.Float64()*0.1)

		p := c.Position()
		if p.X < Margin || p.X >= float64(g.Width)-Margin || p.Y < Margin || p.Y >= float64(g.Height)-Margin {
			t.Fatalf("step %d left bounds: %+v", i, p)
		}
		if g.IsWall(int(math.Floor(p.X)), int(math.Floor(p.Y))) {
			t.Fatalf("step %d entered a wall: %+v", i, p)
		}
		if tx, ty := c.Tile(); tx != int(math.Floor(p.X)) || ty != int(math.Floor(p.Y)) {
			t.Fatalf("step %d tile (%d,%d) out of sync with %+v", i, tx, ty, p)
		}
	}
}

func TestZeroInputNoop(t *testing.T) {
	c := newTestController(t)
	before := c.Position()

	c.Step(Vec{}, 0.1)
	c.Step(Vec{X: 1}, 0)

	if c.Position() != before {
		t.Error("zero direction or zero dt should not move")
	}
}
