package gamedata

import "github.com/gdamore/tcell/v2"

// AbilityDef is a named attack with a fixed power.
type AbilityDef struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

// CreatureDef defines a catalog creature loaded from JSON.
type CreatureDef struct {
	ID        string       `json:"id"`        // Unique identifier (e.g., "sparkwisp")
	Name      string       `json:"name"`      // Display name (e.g., "Sparkwisp")
	Type      string       `json:"type"`      // Elemental type (e.g., "Storm")
	Color     string       `json:"color"`     // Hex color code (e.g., "#fcd34d")
	Abilities []AbilityDef `json:"abilities"` // Fixed ability list
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
