package viewer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vigil/internal/config"
	"vigil/internal/config/logger"
)

func Test_ViewerFSM_Transitions(t *testing.T) {
	ctx := context.Background()
	log := logger.NewSilentLogger(config.DefaultConfig())

	machine := newViewerFSM(log)
	assert.Equal(t, Live, machine.Current())

	assert.NoError(t, machine.Event(ctx, Pause))
	assert.Equal(t, Paused, machine.Current())

	assert.NoError(t, machine.Event(ctx, Resume))
	assert.Equal(t, Live, machine.Current())

	assert.NoError(t, machine.Event(ctx, Stop))
	assert.Equal(t, Stopped, machine.Current())
}

func Test_ViewerFSM_IllegalTransitions(t *testing.T) {
	ctx := context.Background()
	log := logger.NewSilentLogger(config.DefaultConfig())

	machine := newViewerFSM(log)

	// resume only applies to a paused view
	assert.Error(t, machine.Event(ctx, Resume))

	assert.NoError(t, machine.Event(ctx, Pause))
	assert.Error(t, machine.Event(ctx, Pause))

	assert.NoError(t, machine.Event(ctx, Stop))
	assert.Error(t, machine.Event(ctx, Pause))
	assert.Error(t, machine.Event(ctx, Resume))
	assert.Equal(t, Stopped, machine.Current())
}

func Test_ViewerFSM_StopFromPaused(t *testing.T) {
	ctx := context.Background()
	log := logger.NewSilentLogger(config.DefaultConfig())

	machine := newViewerFSM(log)

	assert.NoError(t, machine.Event(ctx, Pause))
	assert.NoError(t, machine.Event(ctx, Stop))
	assert.Equal(t, Stopped, machine.Current())
}
