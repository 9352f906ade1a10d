package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vigil/internal/app/stream"
)

// result builds a snapshot with one row per timestamp
func result(seq uint64, timestamps ...int64) *stream.Result {
	rows := make([]stream.Row, len(timestamps))
	for i, ts := range timestamps {
		rows[i] = stream.Row{
			Timestamp: ts,
			Source:    "app",
			Local:     "12:00:00.000",
			UTC:       "12:00:00.000 UTC",
			FromNow:   "now",
			Message:   "line",
		}
	}

	return &stream.Result{Seq: seq, Rows: rows}
}

func Test_Next_LiveAdoptsIncoming(t *testing.T) {
	prev := ViewState{Rendered: result(1, 100)}
	incoming := result(2, 100, 200)

	next := Next(prev, incoming, false)

	assert.Same(t, incoming, next.Rendered)
	assert.Equal(t, int64(100), next.FreshAfter)
}

func Test_Next_PausedStaysFrozen(t *testing.T) {
	prev := ViewState{Rendered: result(1, 100), FreshAfter: 50}

	next := Next(prev, result(2, 100, 200, 300), true)

	assert.Equal(t, prev, next)
	assert.Same(t, prev.Rendered, next.Rendered)
	assert.Equal(t, int64(50), next.FreshAfter)
}

func Test_Next_FreshnessAdvancesPerUpdate(t *testing.T) {
	u1 := result(1, 100)
	u2 := result(2, 100, 200)
	u3 := result(3, 100, 200, 300)

	vs := Next(ViewState{}, u1, false)
	assert.Equal(t, int64(0), vs.FreshAfter)

	vs = Next(vs, u2, false)
	assert.Equal(t, int64(100), vs.FreshAfter)

	vs = Next(vs, u3, false)
	assert.Equal(t, int64(200), vs.FreshAfter)
}

func Test_Next_NilPreviousRendered(t *testing.T) {
	next := Next(ViewState{}, result(1, 100), false)

	assert.Equal(t, int64(0), next.FreshAfter)
	assert.Equal(t, 1, next.Rendered.Len())
}

func Test_Next_PreservesPendingOffset(t *testing.T) {
	offset := 42
	prev := ViewState{Rendered: result(1, 100), PendingOffset: &offset}

	next := Next(prev, result(2, 100, 200), false)

	assert.Same(t, &offset, next.PendingOffset)
}
