package feed

import (
	"sync"
	"time"
)

// Entry is one formatted line on the tape.
type Entry struct {
	Time time.Time
	Text string
}

// Tape is a bounded ring of recent feed entries. Writers are the scheduler
// tasks; readers are display surfaces polling snapshots.
type Tape struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

// NewTape creates a tape holding at most capacity entries.
func NewTape(capacity int) *Tape {
	if capacity <= 0 {
		capacity = 100
	}
	return &Tape{cap: capacity}
}

// Push appends a line, evicting the oldest beyond capacity.
func (t *Tape) Push(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, Entry{Time: time.Now(), Text: text})
	if len(t.entries) > t.cap {
		t.entries = t.entries[len(t.entries)-t.cap:]
	}
}

// Latest returns up to n most recent entries, newest last.
func (t *Tape) Latest(n int) []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > len(t.entries) {
		n = len(t.entries)
	}
	out := make([]Entry, n)
	copy(out, t.entries[len(t.entries)-n:])
	return out
}
