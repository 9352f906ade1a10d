package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/app/monitor"
	"vigil/internal/app/stream"
	"vigil/internal/app/viewer"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

// TUI launches the full-screen viewer
type TUI interface {
	Run(ctx context.Context, fd stream.Feed, stop func()) error
}

type tui struct {
	cfg     *config.Config
	monitor monitor.Monitor
	log     logger.Logger
}

// NewTUI creates a new TUI instance
func NewTUI(cfg *config.Config, mon monitor.Monitor, log logger.Logger) TUI {
	return &tui{
		cfg:     cfg,
		monitor: mon,
		log:     log,
	}
}

// Run blocks until the viewer exits. Logging is silenced while the
// alternate screen is active so zerolog output cannot corrupt it.
func (t *tui) Run(ctx context.Context, fd stream.Feed, stop func()) error {
	silentLog := logger.NewSilentLogger(t.cfg)

	p := tea.NewProgram(
		viewer.NewModel(ctx, t.cfg, fd, t.monitor, stop, silentLog),
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	return err
}
