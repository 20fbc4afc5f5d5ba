// Package game wires the simulation together and drives it from the terminal.
package game

// Mode represents the top-level screen.
type Mode int

const (
	// ModeMenu shows the title menu. The simulation does not tick.
	ModeMenu Mode = iota
	// ModeExplore is live play. Pause and the backpack are overlays on top of it.
	ModeExplore
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeExplore:
		return "explore"
	default:
		return "unknown"
	}
}
