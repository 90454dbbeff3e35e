// Package history keeps the append-only log of past encode results and the
// exporters that persist it. Entries are never mutated or evicted; the log
// grows for the lifetime of the process.
package history

import (
	"sync"
	"time"
)

// Entry records one successful encode call.
type Entry struct {
	ID               string        `json:"id"`
	Timestamp        time.Time     `json:"timestamp"`
	Original         string        `json:"original"`
	Encoded          string        `json:"encoded"`
	Format           string        `json:"format"`
	SyllableCount    int           `json:"syllable_count"`
	MappedCount      int           `json:"mapped_count"`
	CompressionRatio float64       `json:"compression_ratio"`
	Elapsed          time.Duration `json:"elapsed_ns"`
}

// Log is an append-only sequence of entries, safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log { return &Log{} }

// Append adds one entry at the end of the log.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// All returns a snapshot of every entry in append order.
func (l *Log) All() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns a snapshot of the last n entries, or all of them when the log
// holds fewer than n.
func (l *Log) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
