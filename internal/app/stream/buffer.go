package stream

import (
	"sync"
)

// Buffer holds the bounded, append-only set of log rows. Appends come
// from tailer goroutines; snapshots are taken on the publish cadence.
type Buffer struct {
	mu    sync.Mutex
	rows  []Row
	cap   int
	seq   uint64
	dirty bool
}

// NewBuffer creates a buffer bounded to cap rows
func NewBuffer(cap int) *Buffer {
	return &Buffer{
		rows: make([]Row, 0),
		cap:  cap,
	}
}

// Append adds a row, evicting the oldest rows beyond the bound
func (b *Buffer) Append(row Row) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rows = append(b.rows, row)
	if len(b.rows) > b.cap {
		b.rows = b.rows[len(b.rows)-b.cap:]
	}

	b.dirty = true
}

// Snapshot returns a new Result when rows arrived since the last call,
// or nil when nothing changed. Each snapshot carries a fresh Seq.
func (b *Buffer) Snapshot() *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dirty {
		return nil
	}

	b.dirty = false
	b.seq++

	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)

	return &Result{Seq: b.seq, Rows: rows}
}

// Len returns the current row count
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.rows)
}
