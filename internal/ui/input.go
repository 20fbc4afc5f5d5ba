package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/monbound/internal/world"
)

// Hold windows. Terminals report only presses, so a direction counts as held
// until its window lapses without a repeat. The first window covers the
// terminal's initial repeat delay.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 180 * time.Millisecond
)

// Action is a command decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionPause
	ActionBackpack
	ActionSlot // Numbered choice: ability in battle, lead in the backpack
	ActionFlee
	ActionConfirm
	ActionReset
	ActionMenu
	ActionQuit
)

// Intent is a decoded key press.
type Intent struct {
	Action Action
	Dir    world.Direction // For ActionMove
	Slot   int             // Zero-based, for ActionSlot
}

var moveKeys = map[tcell.Key]world.Direction{
	tcell.KeyUp:    world.Up,
	tcell.KeyRight: world.Right,
	tcell.KeyDown:  world.Down,
	tcell.KeyLeft:  world.Left,
}

var moveRunes = map[rune]world.Direction{
	'w': world.Up,
	'd': world.Right,
	's': world.Down,
	'a': world.Left,
}

// Decode maps a key event to an intent. Letters are case-insensitive.
func Decode(ev *tcell.EventKey) Intent {
	if dir, ok := moveKeys[ev.Key()]; ok {
		return Intent{Action: ActionMove, Dir: dir}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return Intent{Action: ActionPause}
	case tcell.KeyEnter:
		return Intent{Action: ActionConfirm}
	case tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if dir, ok := moveRunes[r]; ok {
		return Intent{Action: ActionMove, Dir: dir}
	}
	if r >= '1' && r <= '9' {
		return Intent{Action: ActionSlot, Slot: int(r - '1')}
	}

	switch r {
	case 'p':
		return Intent{Action: ActionBackpack}
	case 'f':
		return Intent{Action: ActionFlee}
	case 'r':
		return Intent{Action: ActionReset}
	case 'm':
		return Intent{Action: ActionMenu}
	case 'q':
		return Intent{Action: ActionQuit}
	}
	return Intent{}
}

// HoldTracker turns repeated presses into held directions.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	held   [len(world.Directions)]bool
	until  [len(world.Directions)]time.Time
}

// NewHoldTracker creates a tracker. Non-positive windows use the defaults.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{first: first, repeat: repeat}
}

// Press records a press of dir at now. It reports whether the press began a
// new hold rather than renewing one.
func (h *HoldTracker) Press(dir world.Direction, now time.Time) bool {
	if h.held[dir] {
		if next := now.Add(h.repeat); next.After(h.until[dir]) {
			h.until[dir] = next
		}
		return false
	}
	h.held[dir] = true
	h.until[dir] = now.Add(h.first)
	return true
}

// Expire releases every hold whose window ended at or before now and
// returns the released directions.
func (h *HoldTracker) Expire(now time.Time) []world.Direction {
	var released []world.Direction
	for _, d := range world.Directions {
		if h.held[d] && !now.Before(h.until[d]) {
			h.held[d] = false
			released = append(released, d)
		}
	}
	return released
}

// Held reports whether dir is currently held.
func (h *HoldTracker) Held(dir world.Direction) bool {
	return h.held[dir]
}

// Reset releases every direction.
func (h *HoldTracker) Reset() {
	h.held = [len(world.Directions)]bool{}
}
