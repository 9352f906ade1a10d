package viewer

import (
	"vigil/internal/app/stream"
)

// ViewState is what the user currently sees, as opposed to whatever the
// stream has delivered in the background. While paused it is frozen at
// its last value no matter how many results keep arriving.
type ViewState struct {
	// Rendered is the result snapshot currently shown
	Rendered *stream.Result

	// FreshAfter is the freshness cutoff: rows with a timestamp
	// strictly greater than this are highlighted as newly arrived.
	// It tracks the last row of the previously displayed snapshot,
	// not of the incoming one.
	FreshAfter int64

	// PendingOffset is the saved distance-from-bottom recorded when
	// the user scrolled away, consumed exactly once on the transition
	// into paused
	PendingOffset *int
}

// Next derives the view state for a newly delivered result. Paused
// views are returned unchanged; live views adopt the incoming result
// and advance the freshness cutoff to what was displayed before.
func Next(prev ViewState, incoming *stream.Result, paused bool) ViewState {
	if paused {
		return prev
	}

	return ViewState{
		Rendered:      incoming,
		FreshAfter:    prev.Rendered.LastTimestamp(),
		PendingOffset: prev.PendingOffset,
	}
}
