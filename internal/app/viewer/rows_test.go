package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vigil/internal/app/stream"
	"vigil/internal/config"
)

func Test_VisibleRows_LiveCapsAtNewest(t *testing.T) {
	timestamps := make([]int64, 150)
	for i := range timestamps {
		timestamps[i] = int64(i + 1)
	}

	vs := ViewState{Rendered: result(1, timestamps...)}

	rows := VisibleRows(vs, false, config.TimezoneLocal)

	assert.Len(t, rows, 100)
	// the newest rows survive the cap, not the oldest
	assert.Equal(t, "line", rows[len(rows)-1].Message)
	assert.Equal(t, int64(51), vs.Rendered.Rows[len(vs.Rendered.Rows)-100].Timestamp)
}

func Test_VisibleRows_PausedShowsFullSnapshot(t *testing.T) {
	timestamps := make([]int64, 150)
	for i := range timestamps {
		timestamps[i] = int64(i + 1)
	}

	vs := ViewState{Rendered: result(1, timestamps...)}

	rows := VisibleRows(vs, true, config.TimezoneLocal)

	assert.Len(t, rows, 150)
}

func Test_VisibleRows_SmallSnapshotUncapped(t *testing.T) {
	vs := ViewState{Rendered: result(1, 100, 200, 300)}

	assert.Len(t, VisibleRows(vs, false, config.TimezoneLocal), 3)
}

func Test_VisibleRows_FreshnessBoundaryIsStrict(t *testing.T) {
	vs := ViewState{Rendered: result(1, 99, 100, 101), FreshAfter: 100}

	rows := VisibleRows(vs, false, config.TimezoneLocal)

	assert.False(t, rows[0].Fresh)
	assert.False(t, rows[1].Fresh)
	assert.True(t, rows[2].Fresh)
}

func Test_VisibleRows_Empty(t *testing.T) {
	assert.Nil(t, VisibleRows(ViewState{}, false, config.TimezoneLocal))
	assert.Nil(t, VisibleRows(ViewState{Rendered: &stream.Result{}}, true, config.TimezoneLocal))
}

func Test_VisibleRows_TimezoneDisplay(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	row := stream.NewRow(at, "api", "request handled")
	vs := ViewState{Rendered: &stream.Result{Seq: 1, Rows: []stream.Row{row}}}

	local := VisibleRows(vs, false, config.TimezoneLocal)
	assert.Equal(t, row.Local, local[0].Time)
	assert.Contains(t, local[0].Detail, row.UTC)
	assert.Contains(t, local[0].Detail, row.FromNow)

	utc := VisibleRows(vs, false, config.TimezoneUTC)
	assert.Equal(t, row.UTC, utc[0].Time)
	assert.Contains(t, utc[0].Detail, row.Local)
	assert.Contains(t, utc[0].Detail, "local")
}

func Test_VisibleRows_Keys(t *testing.T) {
	vs := ViewState{Rendered: result(1, 100, 100, 200)}

	rows := VisibleRows(vs, false, config.TimezoneLocal)

	assert.Equal(t, "100-0", rows[0].Key)
	assert.Equal(t, "100-1", rows[1].Key)
	assert.Equal(t, "200-2", rows[2].Key)
}

func Test_HasFresh(t *testing.T) {
	assert.False(t, HasFresh(nil))
	assert.False(t, HasFresh([]RenderedRow{{Fresh: false}}))
	assert.True(t, HasFresh([]RenderedRow{{Fresh: false}, {Fresh: true}}))
}
