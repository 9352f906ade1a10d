package stream

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigil/internal/app/errors"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

func tailerFixture(t *testing.T, replay bool, include, exclude []string) (*config.Config, *Buffer, Tailer, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.Sources = []*config.Source{{Path: path, Name: "app"}}
	cfg.Stream.Replay = replay
	cfg.Filter.Include = include
	cfg.Filter.Exclude = exclude

	buf := NewBuffer(1000)

	tl, err := NewTailer(cfg, buf, logger.NewSilentLogger(cfg))
	require.NoError(t, err)
	t.Cleanup(tl.Close)

	return cfg, buf, tl, path
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(content)
	require.NoError(t, err)
}

func Test_Tailer_FollowsAppendedLines(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, false, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	appendFile(t, path, "first line\nsecond line\n")

	assert.Eventually(t, func() bool { return buf.Len() == 2 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	assert.Equal(t, "first line", res.Rows[0].Message)
	assert.Equal(t, "second line", res.Rows[1].Message)
	assert.Equal(t, "app", res.Rows[0].Source)
}

func Test_Tailer_SkipsExistingContentByDefault(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, false, nil, nil)

	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	appendFile(t, path, "new line\n")

	assert.Eventually(t, func() bool { return buf.Len() >= 1 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	for _, row := range res.Rows {
		assert.NotEqual(t, "old line", row.Message)
	}
}

func Test_Tailer_ReplayReadsExistingContent(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, true, nil, nil)

	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	assert.Eventually(t, func() bool { return buf.Len() == 1 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	assert.Equal(t, "old line", res.Rows[0].Message)
}

func Test_Tailer_AppliesFilter(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, false, []string{"*error*"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	appendFile(t, path, "plain line\nsome error here\nanother plain\n")

	assert.Eventually(t, func() bool { return buf.Len() == 1 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	assert.Equal(t, "some error here", res.Rows[0].Message)
}

func Test_Tailer_PartialLinesHeldUntilComplete(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, false, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	appendFile(t, path, "incomplete")
	appendFile(t, path, " but finished now\n")

	assert.Eventually(t, func() bool { return buf.Len() == 1 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	assert.Equal(t, "incomplete but finished now", res.Rows[0].Message)
}

func Test_Tailer_TruncationStartsOver(t *testing.T) {
	cfg, buf, tl, path := tailerFixture(t, false, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, tl.Start(ctx, cfg.Sources))

	appendFile(t, path, "before truncate\n")
	assert.Eventually(t, func() bool { return buf.Len() == 1 }, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("after truncate\n"), 0o644))

	assert.Eventually(t, func() bool { return buf.Len() == 2 }, 3*time.Second, 10*time.Millisecond)

	res := buf.Snapshot()
	require.NotNil(t, res)
	assert.Equal(t, "after truncate", res.Rows[1].Message)
}

func Test_Tailer_StartRequiresSources(t *testing.T) {
	_, _, tl, _ := tailerFixture(t, false, nil, nil)

	err := tl.Start(context.Background(), nil)
	assert.ErrorIs(t, err, errors.ErrNoSources)
}

func Test_Tailer_MissingSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sources = []*config.Source{{Path: filepath.Join(t.TempDir(), "nope.log"), Name: "nope"}}

	buf := NewBuffer(10)
	tl, err := NewTailer(cfg, buf, logger.NewSilentLogger(cfg))
	require.NoError(t, err)
	defer tl.Close()

	err = tl.Start(context.Background(), cfg.Sources)
	assert.ErrorIs(t, err, errors.ErrSourceNotFound)
}

func Test_NewTailer_ScopesLogger(t *testing.T) {
	cfg := config.DefaultConfig()

	ctrl := gomock.NewController(t)
	mockLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent("TAILER").Return(logger.NewSilentLogger(cfg))

	tl, err := NewTailer(cfg, NewBuffer(10), mockLog)
	require.NoError(t, err)

	tl.Close()
}

func Test_Tailer_InvalidFilterPattern(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Filter.Include = []string{"["}

	_, err := NewTailer(cfg, NewBuffer(10), logger.NewSilentLogger(cfg))
	assert.ErrorIs(t, err, errors.ErrInvalidGlobPattern)
}

func Test_Tailer_CloseIsIdempotent(t *testing.T) {
	cfg, _, tl, _ := tailerFixture(t, false, nil, nil)

	require.NoError(t, tl.Start(context.Background(), cfg.Sources))

	tl.Close()
	tl.Close()

	assert.ErrorIs(t, tl.Start(context.Background(), cfg.Sources), errors.ErrTailerClosed)
}
