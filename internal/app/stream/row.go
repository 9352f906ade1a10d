package stream

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Time display formats for row timestamps
const (
	LocalTimeFormat = "15:04:05.000"
	UTCTimeFormat   = "15:04:05.000 MST"
)

// Row is a single log entry. Rows are immutable value objects; the
// display strings are computed once at ingestion time.
type Row struct {
	Timestamp int64 // epoch milliseconds
	Source    string
	Local     string
	UTC       string
	FromNow   string
	Message   string
}

// NewRow builds a Row from an ingestion time and a raw message line
func NewRow(t time.Time, source, message string) Row {
	return Row{
		Timestamp: t.UnixMilli(),
		Source:    source,
		Local:     t.Local().Format(LocalTimeFormat),
		UTC:       t.UTC().Format(UTCTimeFormat),
		FromNow:   humanize.Time(t),
		Message:   message,
	}
}

// Result is the full currently-known ordered set of log rows. It is
// replaced wholesale on every publish; Seq identifies the publish
// generation so consumers can detect a fresh result by identity.
type Result struct {
	Seq  uint64
	Rows []Row
}

// Len returns the row count, treating a nil result as empty
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Rows)
}

// Last returns the newest row, if any
func (r *Result) Last() (Row, bool) {
	if r.Len() == 0 {
		return Row{}, false
	}

	return r.Rows[len(r.Rows)-1], true
}

// LastTimestamp returns the newest row's timestamp, or 0 when empty
func (r *Result) LastTimestamp() int64 {
	last, ok := r.Last()
	if !ok {
		return 0
	}

	return last.Timestamp
}
