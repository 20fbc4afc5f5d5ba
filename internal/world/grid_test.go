package world

import (
	"testing"
)

var testRows = []string{
	"#####",
	"#S.G#",
	"#.#T#",
	"#R.?#",
	"#####",
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(testRows, nil)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}

	if g.Width != 5 || g.Height != 5 {
		t.Errorf("NewGrid() size = %dx%d, want 5x5", g.Width, g.Height)
	}

	x, y := g.Start()
	if x != 1 || y != 1 {
		t.Errorf("Start() = (%d,%d), want (1,1)", x, y)
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "#S", "###"}},
		{"no start", []string{"###", "#.#", "###"}},
		{"two starts", []string{"####", "#SS#", "####"}},
	}

	for _, tt := range tests {
		if _, err := NewGrid(tt.rows, nil); err == nil {
			t.Errorf("NewGrid(%s) should fail", tt.name)
		}
	}
}

func TestGridType(t *testing.T) {
	g := MustNewGrid(testRows, nil)

	tests := []struct {
		x, y     int
		expected TileType
	}{
		{0, 0, TypeWall},
		{1, 1, TypeStart},
		{2, 1, TypeTrail},
		{3, 1, TypeGrass},
		{3, 2, TypeTown},
		{1, 3, TypeTrainer},
		{3, 3, TypeTrail}, // unknown symbol degrades to trail
		{-1, 2, TypeWall},
		{5, 2, TypeWall},
		{2, 9, TypeWall},
	}

	for _, tt := range tests {
		if got := g.Type(tt.x, tt.y); got != tt.expected {
			t.Errorf("Type(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestGridIsWall(t *testing.T) {
	g := MustNewGrid(testRows, nil)

	if !g.IsWall(2, 2) {
		t.Error("IsWall(2,2) should be true")
	}
	if g.IsWall(3, 2) {
		t.Error("town tile should not be a wall")
	}
	if !g.IsWall(-1, -1) {
		t.Error("off-grid tile should read as wall")
	}
}

func TestGridFind(t *testing.T) {
	g := MustNewGrid([]string{
		"#####",
		"#RS.#",
		"#..R#",
		"#####",
	}, nil)

	got := g.Find(TypeTrainer)
	want := []Point{{1, 1}, {3, 2}}
	if len(got) != len(want) {
		t.Fatalf("Find(TypeTrainer) returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Find(TypeTrainer)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCustomLegend(t *testing.T) {
	legend := DefaultLegend()
	legend['~'] = TypeWater
	legend['x'] = TypeWall

	g := MustNewGrid([]string{"S~x"}, legend)

	if got := g.Type(1, 0); got != TypeWater {
		t.Errorf("Type(1,0) = %v, want water", got)
	}
	if !g.IsWall(2, 0) {
		t.Error("custom wall symbol should block")
	}
}

func TestParseTileType(t *testing.T) {
	if tt, ok := ParseTileType("grass"); !ok || tt != TypeGrass {
		t.Errorf("ParseTileType(grass) = %v,%v", tt, ok)
	}
	if tt, ok := ParseTileType("lava"); ok || tt != TypeTrail {
		t.Errorf("ParseTileType(lava) = %v,%v, want trail,false", tt, ok)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Right, 1, 0},
		{Down, 0, 1},
		{Left, -1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}
