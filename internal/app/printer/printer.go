package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"vigil/internal/app/stream"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

const (
	bannerMinWidth   = 40
	bannerFallback   = 80
	maxSourcesShown  = 5
	defaultSourceLen = 8
)

// sourceColorPalette provides distinct colors for source names
var sourceColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0550ae", Dark: "#79c0ff"},
	{Light: "#8250df", Dark: "#d2a8ff"},
	{Light: "#1a7f37", Dark: "#7ee787"},
	{Light: "#9a6700", Dark: "#e3b341"},
	{Light: "#cf222e", Dark: "#ff7b72"},
	{Light: "#bf3989", Dark: "#f778ba"},
	{Light: "#1b7c83", Dark: "#76e3ea"},
	{Light: "#57606a", Dark: "#8b949e"},
}

var separatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// Printer streams rows to a plain writer for piped output or --no-ui
// runs. It renders each row once, in arrival order, with a stable
// color per source.
type Printer interface {
	Print(ctx context.Context, updates <-chan *stream.Result) error
}

type printer struct {
	cfg            *config.Config
	out            io.Writer
	maxSourceLen   int
	separatorStyle lipgloss.Style
	timeStyle      lipgloss.Style
	sourceStyles   map[string]lipgloss.Style
	lastPrinted    *stream.Row
	log            logger.Logger
}

// New creates a Printer writing to stdout
func New(cfg *config.Config, log logger.Logger) Printer {
	return NewWithOutput(cfg, os.Stdout, log)
}

// NewWithOutput creates a Printer writing to the given writer
func NewWithOutput(cfg *config.Config, out io.Writer, log logger.Logger) Printer {
	return &printer{
		cfg:            cfg,
		out:            out,
		maxSourceLen:   defaultSourceLen,
		separatorStyle: lipgloss.NewStyle().Foreground(separatorColor),
		timeStyle:      lipgloss.NewStyle().Foreground(separatorColor),
		sourceStyles:   make(map[string]lipgloss.Style),
		log:            log.WithComponent("PRINTER"),
	}
}

// Print renders a banner and then streams rows until the updates
// channel closes or the context ends
func (p *printer) Print(ctx context.Context, updates <-chan *stream.Result) error {
	p.renderBanner()

	for {
		select {
		case <-ctx.Done():
			return nil
		case res, ok := <-updates:
			if !ok {
				return nil
			}
			p.printNew(res)
		}
	}
}

// printNew prints the rows of the snapshot that follow the last row
// already printed. Snapshots overlap because the buffer is a window,
// not a delta.
func (p *printer) printNew(res *stream.Result) {
	if res == nil || res.Len() == 0 {
		return
	}

	rows := res.Rows
	start := 0

	if p.lastPrinted != nil {
		for i := len(rows) - 1; i >= 0; i-- {
			if sameRow(&rows[i], p.lastPrinted) {
				start = i + 1
				break
			}
		}
	}

	for i := start; i < len(rows); i++ {
		p.printRow(&rows[i])
	}

	if start < len(rows) {
		last := rows[len(rows)-1]
		p.lastPrinted = &last
	}
}

// sameRow reports whether two rows are the same buffered line
func sameRow(a, b *stream.Row) bool {
	return a.Timestamp == b.Timestamp && a.Source == b.Source && a.Message == b.Message
}

// printRow formats a single row with a timestamp and colored source
func (p *printer) printRow(row *stream.Row) {
	ts := row.Local
	if p.cfg.Display.Timezone == config.TimezoneUTC {
		ts = row.UTC
	}

	if len(row.Source) > p.maxSourceLen {
		p.maxSourceLen = len(row.Source)
	}

	padded := row.Source + strings.Repeat(" ", p.maxSourceLen-len(row.Source))

	fmt.Fprintf(p.out, "%s %s %s %s\n",
		p.timeStyle.Render(ts),
		p.sourceStyle(row.Source).Render(padded),
		p.separatorStyle.Render("|"),
		row.Message,
	)
}

// sourceStyle returns a consistent style for a source name
func (p *printer) sourceStyle(source string) lipgloss.Style {
	if style, exists := p.sourceStyles[source]; exists {
		return style
	}

	h := 0
	for _, r := range source {
		h = h*31 + int(r)
	}
	if h < 0 {
		h = -h
	}

	style := lipgloss.NewStyle().Foreground(sourceColorPalette[h%len(sourceColorPalette)]).Bold(true)
	p.sourceStyles[source] = style

	return style
}

// renderBanner writes a short header describing what is being followed
func (p *printer) renderBanner() {
	termWidth, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || termWidth < bannerMinWidth {
		termWidth = bannerFallback
	}

	names := make([]string, 0, len(p.cfg.Sources))
	for _, src := range p.cfg.Sources {
		names = append(names, src.Name)
	}

	showing := strings.Join(names, ", ")
	if len(names) > maxSourcesShown {
		showing = strings.Join(names[:maxSourcesShown], ", ") +
			fmt.Sprintf(" and %d more", len(names)-maxSourcesShown)
	}

	title := fmt.Sprintf("%s v%s", config.AppName, config.Version)
	rule := strings.Repeat("─", min(termWidth, bannerFallback))

	fmt.Fprintln(p.out, p.separatorStyle.Render(rule))
	fmt.Fprintf(p.out, "%s  following %s (%s)\n",
		lipgloss.NewStyle().Bold(true).Render(title),
		showing,
		p.cfg.Display.Timezone,
	)
	fmt.Fprintln(p.out, p.separatorStyle.Render(rule))
}
