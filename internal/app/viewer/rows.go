package viewer

import (
	"fmt"

	"vigil/internal/config"
)

// RenderedRow is a single row prepared for painting
type RenderedRow struct {
	// Key identifies the row for list diffing. Timestamp plus index is
	// stable enough; rows carry no durable identity of their own.
	Key string

	// Time is the primary timestamp text for the configured timezone
	Time string

	// Detail carries the alternate timezone and the relative time,
	// surfaced on the viewer's detail line
	Detail string

	Source  string
	Message string

	// Fresh marks rows newer than the freshness cutoff
	Fresh bool
}

// VisibleRows selects and classifies the rows to paint. Live views are
// capped at the newest liveRowCap rows so unbounded history is never
// painted while rows stream in; paused views show the full snapshot.
func VisibleRows(vs ViewState, paused bool, timezone string) []RenderedRow {
	if vs.Rendered.Len() == 0 {
		return nil
	}

	rows := vs.Rendered.Rows
	if !paused && len(rows) > liveRowCap {
		rows = rows[len(rows)-liveRowCap:]
	}

	rendered := make([]RenderedRow, len(rows))

	for i, row := range rows {
		r := RenderedRow{
			Key:     fmt.Sprintf("%d-%d", row.Timestamp, i),
			Source:  row.Source,
			Message: row.Message,
			Fresh:   row.Timestamp > vs.FreshAfter,
		}

		if timezone == config.TimezoneUTC {
			r.Time = row.UTC
			r.Detail = fmt.Sprintf("%s local • %s", row.Local, row.FromNow)
		} else {
			r.Time = row.Local
			r.Detail = fmt.Sprintf("%s • %s", row.UTC, row.FromNow)
		}

		rendered[i] = r
	}

	return rendered
}

// HasFresh reports whether any visible row is classified fresh
func HasFresh(rows []RenderedRow) bool {
	for _, r := range rows {
		if r.Fresh {
			return true
		}
	}

	return false
}
