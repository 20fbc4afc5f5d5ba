package game

// MaxMessages is how many log lines the session keeps.
const MaxMessages = 6

// MessageLog keeps the most recent messages, newest first.
type MessageLog struct {
	entries []string
}

// Add pushes a message to the front and drops the oldest past the cap.
func (l *MessageLog) Add(msg string) {
	l.entries = append([]string{msg}, l.entries...)
	if len(l.entries) > MaxMessages {
		l.entries = l.entries[:MaxMessages]
	}
}

// Reset replaces the log. msgs are given newest first.
func (l *MessageLog) Reset(msgs ...string) {
	l.entries = l.entries[:0]
	for i := len(msgs) - 1; i >= 0; i-- {
		l.Add(msgs[i])
	}
}

// Entries returns a copy of the log, newest first.
func (l *MessageLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Latest returns the newest message, or "".
func (l *MessageLog) Latest() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[0]
}
