package viewer

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	colorBorder  = lipgloss.Color("8")       // Gray - borders and help text
	colorMuted   = lipgloss.Color("7")       // Light gray - muted elements
	colorLive    = lipgloss.Color("10")      // Green - live indicator
	colorPaused  = lipgloss.Color("11")      // Yellow - paused indicator

	freshHotColor  = lipgloss.Color("#fbbf24") // Amber - just arrived
	freshWarmColor = lipgloss.Color("#d97706")
	freshCoolColor = lipgloss.Color("#92610a")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	separatorStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	liveStyle = lipgloss.NewStyle().
			Foreground(colorLive).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	rowMessageStyle = lipgloss.NewStyle()

	detailStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(2)
)

// sourceColorPalette provides distinct colors for source names
var sourceColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#dc2626", Dark: "#f87171"}, // Red
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
}

// sourceStyle returns a consistent style for a source name
func sourceStyle(source string) lipgloss.Style {
	h := 0
	for _, c := range source {
		h = 31*h + int(c)
	}

	if h < 0 {
		h = -h
	}

	return lipgloss.NewStyle().Foreground(sourceColorPalette[h%len(sourceColorPalette)]).Bold(true)
}
