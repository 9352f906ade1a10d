package viewer

import (
	"context"

	"github.com/looplab/fsm"

	"vigil/internal/config/logger"
)

// FSM states
const (
	Live    = "live"
	Paused  = "paused"
	Stopped = "stopped"
)

// FSM events
const (
	Pause  = "pause"
	Resume = "resume"
	Stop   = "stop"
)

// newViewerFSM creates the state machine guarding live/paused/stopped
// transitions. Side effects of a transition (scroll correction, content
// refresh) happen in the update loop after a successful event; the
// machine itself only enforces legality.
func newViewerFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Live,
		fsm.Events{
			{Name: Pause, Src: []string{Live}, Dst: Paused},
			{Name: Resume, Src: []string{Paused}, Dst: Live},
			{Name: Stop, Src: []string{Live, Paused}, Dst: Stopped},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("VIEW: %s -> %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}
