package viewer

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/app/monitor"
	"vigil/internal/app/stream"
)

// resultMsg wraps a delivered result snapshot for tea messaging
type resultMsg *stream.Result

// tickMsg signals a UI tick for animations and the elapsed display
type tickMsg time.Time

// statsMsg carries a sample of vigil's own resource usage
type statsMsg struct {
	cpu float64
	mem float64
}

// feedClosedMsg signals the update channel has closed
type feedClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		viewHeight := msg.Height - chromeHeight
		if viewHeight < minViewHeight {
			viewHeight = minViewHeight
		}

		m.ui.viewport.Width = msg.Width
		m.ui.viewport.Height = viewHeight

		if !m.ui.ready {
			m.ui.ready = true
		}

		m.refreshContent()

		if !m.IsPaused() {
			ScrollToBottom(m.surface())
		}

		return m, nil

	case resultMsg:
		return m.handleResult((*stream.Result)(msg))

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		if m.fade.Active() {
			m.fade.Update()
			m.refreshContent()

			if !m.IsPaused() {
				ScrollToBottom(m.surface())
			}
		}

		return m, tickCmd()

	case spinner.TickMsg:
		// the spinner only runs while the view is empty
		if m.vs.Rendered.Len() > 0 {
			return m, nil
		}

		var cmd tea.Cmd
		m.ui.spinner, cmd = m.ui.spinner.Update(msg)

		return m, cmd

	case statsMsg:
		m.stats.cpu = msg.cpu
		m.stats.mem = msg.mem

		return m, statsCmd(m.ctx, m.monitor)

	case feedClosedMsg:
		m.log.Debug().Msg("update channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// handleResult folds a delivered snapshot into the view state. While
// paused the snapshot is remembered as background but nothing visible
// changes.
func (m Model) handleResult(r *stream.Result) (tea.Model, tea.Cmd) {
	m.background = r

	if r != nil && r.Seq != m.lastSeq {
		m.lastSeq = r.Seq
		m.lastAt = time.Now()
	}

	paused := m.IsPaused()
	m.vs = Next(m.vs, r, paused)

	if !paused {
		m.refreshContent()

		if HasFresh(VisibleRows(m.vs, false, m.cfg.Display.Timezone)) {
			m.fade.Trigger()
		}

		ScrollToBottom(m.surface())
	}

	return m, waitForResultCmd(m.updates)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Quit):
		return m.handleStopLive()

	case key.Matches(msg, m.ui.keys.Pause):
		return m.handlePauseToggle()

	case key.Matches(msg, m.ui.keys.Bottom):
		ScrollToBottom(m.surface())
		return m, nil

	case key.Matches(msg, m.ui.keys.Up),
		key.Matches(msg, m.ui.keys.Down),
		key.Matches(msg, m.ui.keys.PageUp),
		key.Matches(msg, m.ui.keys.PageDown):
		return m.handleScrollKey(msg)
	}

	return m, nil
}

// handleStopLive leaves live mode entirely
func (m Model) handleStopLive() (tea.Model, tea.Cmd) {
	_ = m.machine.Event(m.ctx, Stop)

	if m.stop != nil {
		m.stop()
	}

	return m, tea.Quit
}

// handlePauseToggle flips between following the feed and the frozen view
func (m Model) handlePauseToggle() (tea.Model, tea.Cmd) {
	if m.IsPaused() {
		if err := m.machine.Event(m.ctx, Resume); err == nil {
			m.enterLive()
		}

		return m, nil
	}

	if err := m.machine.Event(m.ctx, Pause); err == nil {
		m.enterPaused()
	}

	return m, nil
}

// handleScrollKey applies a scroll movement and checks whether the user
// deliberately left the bottom of a live view
func (m Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.ui.viewport, cmd = m.ui.viewport.Update(msg)

	if offset, pause := DetectManualScroll(m.surface().Metrics(), m.IsPaused()); pause {
		if err := m.machine.Event(m.ctx, Pause); err == nil {
			m.vs.PendingOffset = &offset
			m.enterPaused()
		}
	}

	return m, cmd
}

// enterPaused applies the one-shot scroll correction for the freeze.
// The content swells from the capped live window to the full snapshot,
// so the correction runs against the regrown metrics.
func (m *Model) enterPaused() {
	m.refreshContent()
	m.vs.PendingOffset = EnterPaused(m.surface(), m.vs.PendingOffset)
}

// enterLive resumes following: the latest background result is adopted
// immediately and the viewport snaps back to the newest rows
func (m *Model) enterLive() {
	m.vs.PendingOffset = nil
	m.vs = Next(m.vs, m.background, false)
	m.refreshContent()

	if HasFresh(VisibleRows(m.vs, false, m.cfg.Display.Timezone)) {
		m.fade.Trigger()
	}

	ScrollToBottom(m.surface())
}

// waitForResultCmd returns a command that waits for the next snapshot
func waitForResultCmd(updates <-chan *stream.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-updates
		if !ok {
			return feedClosedMsg{}
		}

		return resultMsg(r)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd samples vigil's own process stats off the UI thread
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(statsPollingInterval, func(time.Time) tea.Msg {
		sampleCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		stats, err := mon.GetStats(sampleCtx, os.Getpid())
		if err != nil {
			return statsMsg{}
		}

		return statsMsg{cpu: stats.CPU, mem: stats.MEM}
	})
}
