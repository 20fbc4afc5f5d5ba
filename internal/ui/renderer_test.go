package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/monbound/internal/battle"
	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/gamedata"
	"github.com/samdwyer/monbound/internal/movement"
	"github.com/samdwyer/monbound/internal/world"
)

var testDef = &gamedata.CreatureDef{
	ID: "sparkwisp", Name: "Sparkwisp", Type: "Storm", Color: "#fcd34d",
	Abilities: []gamedata.AbilityDef{{Name: "Jolt", Power: 6}, {Name: "Thunder Dash", Power: 9}},
}

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	screen, _, err := NewSimulationScreen(100, 40)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	t.Cleanup(screen.Close)
	return NewRenderer(screen), screen
}

func testScene() *Scene {
	grid := world.MustNewGrid([]string{
		"##########",
		"#S..G..R.#",
		"#..T.....#",
		"##########",
	}, world.DefaultLegend())
	lead := entity.NewCreature(testDef, 3, uuid.New())
	return &Scene{
		MapName:    "Test Isle",
		Grid:       grid,
		Player:     movement.Vec{X: 2.5, Y: 1.5},
		TileX:      2,
		TileY:      1,
		Tile:       world.TypeTrail,
		ViewWidth:  8,
		ViewHeight: 4,
		Team:       []*entity.Creature{lead},
		Trainers: []TrainerView{{
			ID: "trainer-7-1", X: 7, Y: 1, Facing: world.Left,
			Sight: []world.Point{{X: 6, Y: 1}, {X: 5, Y: 1}, {X: 4, Y: 1}},
		}},
		Messages: []string{"newest", "older"},
	}
}

func cell(s *Screen, x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

func TestRenderMap(t *testing.T) {
	r, screen := newTestRenderer(t)
	sc := testScene()
	r.Render(sc)

	tests := []struct {
		name   string
		tx, ty int
		want   rune
	}{
		{"wall", 0, 0, '#'},
		{"player", 2, 1, '@'},
		{"grass", 4, 1, '"'},
		{"town", 3, 2, 'T'},
		{"trainer faces left", 7, 1, '<'},
	}
	for _, tt := range tests {
		if got := cell(screen, mapX+tt.tx, mapY+tt.ty); got != tt.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", tt.name, tt.tx, tt.ty, got, tt.want)
		}
	}

	// Tile 8 is outside the 8-wide viewport
	if got := cell(screen, mapX+8, mapY+1); got == '.' {
		t.Error("tiles past the viewport should not be drawn")
	}
	if got := cell(screen, mapX, mapY+sc.ViewHeight+1); got != 'n' {
		t.Errorf("newest message should lead the log, got %q", got)
	}
}

func TestRenderCreatureUsesCatalogColor(t *testing.T) {
	r, screen := newTestRenderer(t)
	sc := testScene()
	r.Render(sc)

	// Team rows start two cells into the panel, one row under its title
	x, y := mapX+sc.ViewWidth+panelGap+2, mapY+1
	ch, _, style, _ := screen.screen.GetContent(x, y)
	if ch != 'S' {
		t.Fatalf("team row cell = %q, want 'S'", ch)
	}
	fg, _, _ := style.Decompose()
	if want := testDef.TCellColor(); fg != want {
		t.Errorf("creature name color = %v, want %v", fg, want)
	}
}

func TestRenderCameraOffset(t *testing.T) {
	r, screen := newTestRenderer(t)
	sc := testScene()
	sc.CameraX = 2.6
	r.Render(sc)

	// Origin floors to column 2, so the player sits in the first column
	if got := cell(screen, mapX, mapY+1); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
}

func TestRenderDefeatedTrainer(t *testing.T) {
	r, screen := newTestRenderer(t)
	sc := testScene()
	sc.Trainers[0].Defeated = true
	sc.Trainers[0].Sight = nil
	r.Render(sc)

	if got := cell(screen, mapX+7, mapY+1); got != 'R' {
		t.Errorf("defeated trainer = %q, want 'R'", got)
	}
	if sc.Watched(6, 1) {
		t.Error("defeated trainer should watch nothing")
	}
}

func TestRenderMenu(t *testing.T) {
	r, screen := newTestRenderer(t)
	sc := testScene()
	sc.Menu = true
	r.Render(sc)

	if got := cell(screen, mapX+2, 2); got != 'M' {
		t.Errorf("menu title cell = %q, want 'M'", got)
	}
	if got := cell(screen, mapX+2, mapY+1); got == '@' {
		t.Error("menu should not draw the map")
	}
}

func TestRenderBattleAndOverlays(t *testing.T) {
	r, _ := newTestRenderer(t)
	sc := testScene()
	sc.Battle = &BattleView{
		Phase:    battle.PhasePlayerTurn,
		Opponent: entity.NewCreature(testDef, 4, uuid.New()),
	}
	r.Render(sc)

	sc.Battle.Phase = battle.PhaseFoeTurn
	sc.Paused = true
	r.Render(sc)

	sc.Paused = false
	sc.Backpack = true
	r.Render(sc)
}

func TestScreenDrawText(t *testing.T) {
	screen, _, err := NewSimulationScreen(20, 2)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	defer screen.Close()

	if n := screen.DrawText(0, 0, "Jolt", tcell.StyleDefault); n != 4 {
		t.Errorf("DrawText width = %d, want 4", n)
	}
	if got := cell(screen, 3, 0); got != 't' {
		t.Errorf("cell 3 = %q, want 't'", got)
	}
}

func TestHPColor(t *testing.T) {
	if hpColor(1) == hpColor(0) {
		t.Error("full and empty HP should use different colors")
	}
	if hpColor(2) != hpColor(1) {
		t.Error("ratio above 1 should clamp")
	}
}
