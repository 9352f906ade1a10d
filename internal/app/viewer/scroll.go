package viewer

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// Metrics describes a scrollable surface: the current top line, the
// total content height and the visible client height, all in lines
type Metrics struct {
	Top     int
	Content int
	Client  int
}

// Surface is the capability the scroll manager needs from a viewport.
// Keeping it this narrow lets every scroll rule be tested without a
// rendering surface.
type Surface interface {
	Metrics() Metrics
	ScrollTo(top int)
}

// DistanceFromBottom returns the gap between the current scroll
// position and the end of the content
func DistanceFromBottom(m Metrics) int {
	d := m.Content - (m.Top + m.Client)
	if d < 0 {
		d = 0
	}

	return d
}

// DetectManualScroll interprets the current metrics of a live view.
// A distance from bottom of at least scrollPauseThreshold means the
// user deliberately scrolled away; the returned offset is recorded as
// the pending offset and a pause is requested.
func DetectManualScroll(m Metrics, paused bool) (offset int, pause bool) {
	if paused {
		return 0, false
	}

	d := DistanceFromBottom(m)
	if d < scrollPauseThreshold {
		return 0, false
	}

	return d, true
}

// ScrollToBottom moves the surface so the newest content is visible
func ScrollToBottom(s Surface) {
	m := s.Metrics()

	top := m.Content - m.Client
	if top < 0 {
		top = 0
	}

	s.ScrollTo(top)
}

// RestoreOffset re-applies a saved distance-from-bottom against the
// surface's current metrics. Content may have grown since the offset
// was recorded; the relative position is what is preserved.
func RestoreOffset(s Surface, offset int) {
	m := s.Metrics()

	top := m.Content - (offset + m.Client)
	if top < 0 {
		top = 0
	}

	s.ScrollTo(top)
}

// EnterPaused applies the one-shot scroll correction for a transition
// into the paused state and returns the cleared pending offset. With a
// saved offset the relative position is restored; without one the view
// is parked at the bottom, preserving "was already at the bottom"
// behavior for pauses not triggered by scrolling.
func EnterPaused(s Surface, pending *int) *int {
	if pending != nil {
		RestoreOffset(s, *pending)
		return nil
	}

	ScrollToBottom(s)

	return nil
}

// viewportSurface adapts a bubbles viewport to the Surface capability
type viewportSurface struct {
	vp *viewport.Model
}

// NewSurface wraps a viewport model as a Surface
func NewSurface(vp *viewport.Model) Surface {
	return &viewportSurface{vp: vp}
}

// Metrics reads the viewport's scroll geometry
func (s *viewportSurface) Metrics() Metrics {
	return Metrics{
		Top:     s.vp.YOffset,
		Content: s.vp.TotalLineCount(),
		Client:  s.vp.Height,
	}
}

// ScrollTo moves the viewport to the given top line
func (s *viewportSurface) ScrollTo(top int) {
	s.vp.SetYOffset(top)
}
