// Package ledger records original→assigned filename mappings for a review
// session. Entries are keyed by original filename; re-confirming an image
// overwrites its entry in place instead of appending a duplicate.
package ledger

import (
	"sync"
	"time"
)

// Entry is one confirmed rename: the original filename, the assigned name
// (extension excluded; the original's extension is appended at export), and
// the retained file content.
type Entry struct {
	Original    string
	Assigned    string
	Content     []byte
	ConfirmedAt time.Time
}

// Ledger maps original filenames to their assigned names. Iteration order is
// insertion order, which keeps archive and manifest output deterministic.
// Methods are safe for concurrent use so an exporter may read a snapshot
// while the UI goroutine owns the live session.
type Ledger struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

func New() *Ledger {
	return &Ledger{
		entries: make(map[string]Entry),
	}
}

// Set records or overwrites the entry for original. Overwriting keeps the
// entry's original position so repeated confirmations don't reorder output.
func (l *Ledger) Set(original, assigned string, content []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.entries[original]; !exists {
		l.order = append(l.order, original)
	}
	l.entries[original] = Entry{
		Original:    original,
		Assigned:    assigned,
		Content:     content,
		ConfirmedAt: time.Now(),
	}
}

func (l *Ledger) Get(original string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[original]
	return e, ok
}

// Len reports the number of distinct originals recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Entries returns a snapshot of all entries in insertion order. The slice is
// a copy; callers may iterate it while the ledger keeps changing.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.entries[key])
	}
	return out
}

// AssignedNames returns the assigned filenames in insertion order, skipping
// the entry keyed by except. This is the numbering history the filename
// engine derives the next sequence number from; an image being re-confirmed
// passes its own original name so its previous entry does not count toward
// the number it is about to receive.
func (l *Ledger) AssignedNames(except string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.order))
	for _, key := range l.order {
		if key == except {
			continue
		}
		out = append(out, l.entries[key].Assigned)
	}
	return out
}

// Reset drops all entries. Called when a new image import replaces the
// session's sequence.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order = nil
	l.entries = make(map[string]Entry)
}
