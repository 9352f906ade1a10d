package viewer

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	// Spring physics parameters
	fadeAngularFrequency = 4.0
	fadeDampingRatio     = 1.0 // critically damped, no rebound

	// Position constants
	fadePositionHot     = 1.0
	fadePositionSettled = 0.0

	// Position below which the fade is considered finished
	fadeSettleThreshold = 0.05
)

// fadeRamp maps spring positions to highlight colors, hottest first
var fadeRamp = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(freshHotColor).Bold(true),
	lipgloss.NewStyle().Foreground(freshWarmColor),
	lipgloss.NewStyle().Foreground(freshCoolColor),
}

// Fade renders the one-shot highlight for freshly arrived rows. Each
// accepted live update retriggers it at full intensity; it then decays
// to neutral once and stays there. There is no per-row timer, the whole
// batch of fresh rows shares one timeline.
type Fade struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	active   bool
}

// NewFade creates a fade animator driven by the UI tick rate
func NewFade() *Fade {
	return &Fade{
		spring:   harmonica.NewSpring(harmonica.FPS(uiTicksPerSecond), fadeAngularFrequency, fadeDampingRatio),
		position: fadePositionSettled,
		velocity: 0,
	}
}

// Trigger restarts the fade at full highlight
func (f *Fade) Trigger() {
	f.position = fadePositionHot
	f.velocity = 0
	f.active = true
}

// Update advances the decay by one UI tick
func (f *Fade) Update() {
	if !f.active {
		return
	}

	f.position, f.velocity = f.spring.Update(f.position, f.velocity, fadePositionSettled)

	if f.position < fadeSettleThreshold {
		f.position = fadePositionSettled
		f.velocity = 0
		f.active = false
	}
}

// Active returns whether the fade is still decaying
func (f *Fade) Active() bool {
	return f.active
}

// Style returns the style for fresh rows at the current decay position
func (f *Fade) Style() lipgloss.Style {
	if !f.active {
		return rowMessageStyle
	}

	idx := int((fadePositionHot - f.position) * float64(len(fadeRamp)))
	if idx >= len(fadeRamp) {
		idx = len(fadeRamp) - 1
	}

	return fadeRamp[idx]
}
