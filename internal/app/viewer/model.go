package viewer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/looplab/fsm"

	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/app/monitor"
	"vigil/internal/app/stream"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

// Model is the Bubble Tea model for the live log viewer
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	monitor monitor.Monitor
	updates <-chan *stream.Result
	machine *fsm.FSM
	stop    func()

	// vs is what the user sees; background is the latest delivered
	// result regardless of pause state
	vs         ViewState
	background *stream.Result
	fade       *Fade

	// identity of the latest result, for the elapsed-since-update display
	lastSeq uint64
	lastAt  time.Time

	ui struct {
		width       int
		height      int
		ready       bool
		tickCounter int
		keys        KeyMap
		help        help.Model
		spinner     spinner.Model
		viewport    viewport.Model
	}

	stats struct {
		cpu float64
		mem float64
	}

	log logger.Logger
}

// NewModel creates a new viewer model. stop is invoked when the user
// leaves live mode entirely; it must cancel the stream feeding updates.
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	feed stream.Feed,
	mon monitor.Monitor,
	stop func(),
	log logger.Logger,
) Model {
	log = log.WithComponent("VIEWER")

	m := Model{
		ctx:     ctx,
		cfg:     cfg,
		monitor: mon,
		updates: feed.Updates(),
		machine: newViewerFSM(log),
		stop:    stop,
		fade:    NewFade(),
		log:     log,
	}

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(liveStyle),
	)
	m.ui.viewport = viewport.New(0, 0)

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForResultCmd(m.updates),
		tickCmd(),
		statsCmd(m.ctx, m.monitor),
		m.ui.spinner.Tick,
	)
}

// IsPaused reports whether the view is currently frozen
func (m Model) IsPaused() bool {
	return m.machine.Current() == Paused
}

// surface exposes the viewport to the scroll manager
func (m *Model) surface() Surface {
	return NewSurface(&m.ui.viewport)
}

// refreshContent rebuilds the viewport content from the view state
func (m *Model) refreshContent() {
	rows := VisibleRows(m.vs, m.IsPaused(), m.cfg.Display.Timezone)
	m.ui.viewport.SetContent(m.renderRows(rows))
}
