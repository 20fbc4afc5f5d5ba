package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/monbound/internal/world"
)

func TestLoadCreatures(t *testing.T) {
	creatures, err := LoadCreatures()
	if err != nil {
		t.Fatalf("Failed to load creatures: %v", err)
	}

	if len(creatures) != 4 {
		t.Errorf("Expected 4 creatures, got %d", len(creatures))
	}

	expectedIDs := map[string]bool{"sparkwisp": false, "pebblum": false, "feralume": false, "mistrine": false}
	for _, c := range creatures {
		if _, ok := expectedIDs[c.ID]; ok {
			expectedIDs[c.ID] = true
		}
		if len(c.Abilities) != 2 {
			t.Errorf("Creature %q has %d abilities, want 2", c.ID, len(c.Abilities))
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected creature %q not found", id)
		}
	}
}

func TestCreatureRegistry(t *testing.T) {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 creature types, got %d", registry.Count())
	}

	spark := registry.GetByID("sparkwisp")
	if spark == nil {
		t.Fatal("Sparkwisp not found by ID")
	}
	if spark.Abilities[1].Name != "Thunder Dash" || spark.Abilities[1].Power != 9 {
		t.Errorf("Sparkwisp second ability = %+v", spark.Abilities[1])
	}

	if registry.At(0).ID != "sparkwisp" || registry.At(5).ID != "pebblum" {
		t.Error("At() should wrap around the catalog")
	}

	// Picking is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a := registry.Pick(rng1).ID
		b := registry.Pick(rng2).ID
		if a != b {
			t.Errorf("Pick %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#fcd34d", true},
		{"#FFFFFF", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#zzzzzz", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	got, err := ParseHexColor("fcd34d")
	if err != nil {
		t.Fatalf("ParseHexColor() error = %v", err)
	}
	if want := tcell.NewRGBColor(0xfc, 0xd3, 0x4d); got != want {
		t.Errorf("ParseHexColor(fcd34d) = %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[CreaturesFile]("items.json"); err == nil {
		t.Error("Load of a file that is not embedded should fail")
	}
}

func TestDefaultMap(t *testing.T) {
	registry := MustLoadMapRegistry()

	def := registry.Default()
	if def.ID != DefaultMapID {
		t.Fatalf("Default() = %q, want %q", def.ID, DefaultMapID)
	}

	g, err := def.Grid()
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}

	if g.Width != 40 || g.Height != 24 {
		t.Errorf("default map size = %dx%d, want 40x24", g.Width, g.Height)
	}
	if x, y := g.Start(); x != 1 || y != 1 {
		t.Errorf("default map start = (%d,%d), want (1,1)", x, y)
	}
	if n := len(g.Find(world.TypeTrainer)); n == 0 {
		t.Error("default map should contain trainer spawns")
	}
}

func TestMapLegendOverrides(t *testing.T) {
	def := MapDef{
		ID:     "test",
		Rows:   []string{"S~x"},
		Legend: map[string]string{"~": "water", "x": "wall"},
	}

	g, err := def.Grid()
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}
	if g.Type(1, 0) != world.TypeWater {
		t.Errorf("Type(1,0) = %v, want water", g.Type(1, 0))
	}
	if !g.IsWall(2, 0) {
		t.Error("x should be a wall")
	}

	bad := MapDef{ID: "bad", Rows: []string{"S"}, Legend: map[string]string{"~": "lava"}}
	if _, err := bad.Grid(); err == nil {
		t.Error("unknown tile type in legend should fail")
	}
}
