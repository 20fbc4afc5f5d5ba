package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/monbound/internal/world"
)

// DefaultMapID is the map used when none is configured.
const DefaultMapID = "sunpetal"

// MapDef defines a tile map loaded from JSON.
type MapDef struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Rows   []string          `json:"rows"`
	Legend map[string]string `json:"legend,omitempty"` // Symbol -> tile type overrides
}

// BuildLegend merges the map's overrides onto the default legend.
func (m *MapDef) BuildLegend() (world.Legend, error) {
	legend := world.DefaultLegend()
	for symbol, key := range m.Legend {
		if utf8.RuneCountInString(symbol) != 1 {
			return nil, fmt.Errorf("map %s: legend symbol %q must be a single character", m.ID, symbol)
		}
		t, ok := world.ParseTileType(key)
		if !ok {
			return nil, fmt.Errorf("map %s: unknown tile type %q for symbol %q", m.ID, key, symbol)
		}
		r, _ := utf8.DecodeRuneInString(symbol)
		legend[r] = t
	}
	return legend, nil
}

// Grid builds the immutable world grid for this map.
func (m *MapDef) Grid() (*world.Grid, error) {
	legend, err := m.BuildLegend()
	if err != nil {
		return nil, err
	}
	g, err := world.NewGrid(m.Rows, legend)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}
	return g, nil
}

// MapsFile represents the structure of maps.json.
type MapsFile struct {
	Maps []MapDef `json:"maps"`
}

// LoadMaps loads map definitions from the embedded maps.json file.
func LoadMaps() ([]MapDef, error) {
	file, err := Load[MapsFile]("maps.json")
	if err != nil {
		return nil, err
	}
	return file.Maps, nil
}

// MapRegistry holds loaded map definitions.
type MapRegistry struct {
	maps []MapDef
}

// LoadMapRegistry loads and creates a registry from the embedded maps.json.
func LoadMapRegistry() (*MapRegistry, error) {
	maps, err := LoadMaps()
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, errors.New("no maps loaded from maps.json")
	}
	return &MapRegistry{maps: maps}, nil
}

// MustLoadMapRegistry loads a registry, panicking on error.
func MustLoadMapRegistry() *MapRegistry {
	registry, err := LoadMapRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the map definition with the given ID, or nil if not found.
func (r *MapRegistry) GetByID(id string) *MapDef {
	for i := range r.maps {
		if r.maps[i].ID == id {
			return &r.maps[i]
		}
	}
	return nil
}

// Default returns the default map, falling back to the first loaded map.
func (r *MapRegistry) Default() *MapDef {
	if m := r.GetByID(DefaultMapID); m != nil {
		return m
	}
	return &r.maps[0]
}
