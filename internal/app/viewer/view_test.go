package viewer

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigil/internal/config"
	"vigil/internal/config/logger"
)

func Test_View_InitializingBeforeFirstResize(t *testing.T) {
	cfg := config.DefaultConfig()

	m := NewModel(context.Background(), cfg, newFakeFeed(), fakeMonitor{}, nil, logger.NewSilentLogger(cfg))

	assert.Equal(t, "Initializing…", m.View())
}

func Test_View_EmptyStateWhileWaiting(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "waiting for logs…")
	assert.Contains(t, view, "live")
}

func Test_View_RendersRows(t *testing.T) {
	m, _ := newTestModel(t)

	m = deliver(t, m, result(1, 100, 200))

	view := m.View()

	assert.Contains(t, view, "line")
	assert.Contains(t, view, "app")
	assert.Contains(t, view, "2/2 rows")
}

func Test_View_PausedHeader(t *testing.T) {
	m, _ := newTestModel(t)

	m = deliver(t, m, result(1, 100))

	updated, _ := m.handlePauseToggle()
	m = updated.(Model)

	assert.Contains(t, m.View(), "paused")
}

func Test_View_NoElapsedBeforeFirstResult(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Empty(t, m.renderElapsed())
	assert.NotContains(t, m.View(), "updated")
}

func Test_View_ElapsedAfterResult(t *testing.T) {
	m, _ := newTestModel(t)

	m = deliver(t, m, result(1, 100))

	assert.Contains(t, m.renderElapsed(), "updated")
	assert.Contains(t, m.renderElapsed(), "ago")
}

func Test_View_DetailShowsNewestVisibleRow(t *testing.T) {
	m, _ := newTestModel(t)

	m = deliver(t, m, result(1, 100, 200))

	detail := m.renderDetail()

	rows := VisibleRows(m.vs, false, m.cfg.Display.Timezone)
	require.NotEmpty(t, rows)
	assert.Contains(t, detail, rows[len(rows)-1].Detail)
}

func Test_View_ResizeKeepsLiveViewAtBottom(t *testing.T) {
	m, _ := newTestModel(t)

	timestamps := make([]int64, 80)
	for i := range timestamps {
		timestamps[i] = int64(i + 1)
	}
	m = deliver(t, m, result(1, timestamps...))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	assert.Equal(t, 0, DistanceFromBottom(m.surface().Metrics()))
}
