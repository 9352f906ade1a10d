package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"vigil/internal/config"
)

// View renders the viewer
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	sections := []string{
		m.renderHeader(),
		m.renderLogs(),
		m.renderDetail(),
		m.renderStatus(),
		m.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the follow state
func (m Model) renderHeader() string {
	state := liveStyle.Render("● live")
	if m.IsPaused() {
		state = pausedStyle.Render("❚❚ paused")
	}

	title := titleStyle.Render(config.AppName)
	line := fmt.Sprintf("%s %s %s", title, separatorStyle.Render("·"), state)

	fill := m.ui.width - lipgloss.Width(line) - 2
	if fill < 0 {
		fill = 0
	}

	return line + " " + separatorStyle.Render(strings.Repeat("─", fill))
}

// renderLogs renders the scrolling log area
func (m Model) renderLogs() string {
	if m.vs.Rendered.Len() == 0 {
		return lipgloss.Place(
			m.ui.viewport.Width, m.ui.viewport.Height,
			lipgloss.Center, lipgloss.Center,
			emptyStateStyle.Render(m.ui.spinner.View()+" waiting for logs…"),
		)
	}

	return m.ui.viewport.View()
}

// renderRows paints the visible rows into viewport content
func (m Model) renderRows(rows []RenderedRow) string {
	if len(rows) == 0 {
		return ""
	}

	freshStyle := m.fade.Style()

	lines := make([]string, len(rows))

	for i, row := range rows {
		messageStyle := rowMessageStyle
		if row.Fresh {
			messageStyle = freshStyle
		}

		lines[i] = fmt.Sprintf("%s %s %s",
			timestampStyle.Render(row.Time),
			sourceStyle(row.Source).Render(row.Source),
			messageStyle.Render(row.Message),
		)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the alternate-timezone detail of the newest
// visible row
func (m Model) renderDetail() string {
	rows := VisibleRows(m.vs, m.IsPaused(), m.cfg.Display.Timezone)
	if len(rows) == 0 {
		return ""
	}

	return detailStyle.Render(" " + rows[len(rows)-1].Detail)
}

// renderStatus renders the status bar with counts, the elapsed-since-
// update display and vigil's own resource usage
func (m Model) renderStatus() string {
	parts := make([]string, 0, 4)

	shown := len(VisibleRows(m.vs, m.IsPaused(), m.cfg.Display.Timezone))
	parts = append(parts, fmt.Sprintf("%d/%d rows", shown, m.vs.Rendered.Len()))

	if elapsed := m.renderElapsed(); elapsed != "" {
		parts = append(parts, elapsed)
	}

	if m.stats.cpu != 0 || m.stats.mem != 0 {
		parts = append(parts, fmt.Sprintf("cpu %.1f%% • mem %.0fMB", m.stats.cpu, m.stats.mem))
	}

	parts = append(parts, fmt.Sprintf("tz %s", m.cfg.Display.Timezone))

	return statusStyle.Render(" " + strings.Join(parts, "  │  "))
}

// renderElapsed renders "time since last update"; nothing renders until
// a first result has arrived
func (m Model) renderElapsed() string {
	if m.lastSeq == 0 {
		return ""
	}

	return fmt.Sprintf("updated %s ago", time.Since(m.lastAt).Truncate(time.Second))
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return helpStyle.Render(" " + m.ui.help.View(m.ui.keys))
}
