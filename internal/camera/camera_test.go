package camera

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTargetClamp(t *testing.T) {
	c := New(40, 24, 32, 18, DefaultLerp)

	tests := []struct {
		name   string
		px, py float64
		tx, ty float64
	}{
		{"top-left corner", 1.5, 1.5, 0, 0},
		{"centre", 20, 12, 4, 3},
		{"bottom-right corner", 39.5, 23.5, 8, 6},
		{"partial", 18, 10, 2, 1},
	}

	for _, tt := range tests {
		tx, ty := c.Target(tt.px, tt.py)
		if !near(tx, tt.tx) || !near(ty, tt.ty) {
			t.Errorf("%s: Target(%v,%v) = (%v,%v), want (%v,%v)", tt.name, tt.px, tt.py, tx, ty, tt.tx, tt.ty)
		}
	}
}

func TestSmallMapCollapsesToZero(t *testing.T) {
	c := New(10, 5, 32, 18, DefaultLerp)

	tx, ty := c.Target(9, 4)
	if tx != 0 || ty != 0 {
		t.Errorf("Target on small map = (%v,%v), want (0,0)", tx, ty)
	}
}

func TestUpdateSmoothing(t *testing.T) {
	c := New(40, 24, 32, 18, 0.2)

	// Target is (4,3)
	c.Update(20, 12)
	if !near(c.X, 0.8) || !near(c.Y, 0.6) {
		t.Errorf("after one frame = (%v,%v), want (0.8,0.6)", c.X, c.Y)
	}

	c.Update(20, 12)
	if !near(c.X, 0.8+(4-0.8)*0.2) {
		t.Errorf("after two frames X = %v", c.X)
	}

	for i := 0; i < 200; i++ {
		c.Update(20, 12)
	}
	if !near(c.X, 4) || !near(c.Y, 3) {
		t.Errorf("camera should converge to target, got (%v,%v)", c.X, c.Y)
	}
}

func TestSnap(t *testing.T) {
	c := New(40, 24, 32, 18, DefaultLerp)
	c.X, c.Y = 8, 6

	c.Snap(1.5, 1.5)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Snap = (%v,%v), want (0,0)", c.X, c.Y)
	}
}

func TestInvalidLerpDefaults(t *testing.T) {
	c := New(40, 24, 32, 18, 0)
	c.Update(20, 12)
	if !near(c.X, 4*DefaultLerp) {
		t.Errorf("X = %v, want %v", c.X, 4*DefaultLerp)
	}
}
