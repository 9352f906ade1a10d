package stream

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"vigil/internal/app/errors"
	"vigil/internal/config"
	"vigil/internal/config/logger"
)

// Tailer follows appended lines of the configured source files and
// feeds them into the buffer
type Tailer interface {
	Start(ctx context.Context, sources []*config.Source) error
	Close()
}

// tailFile holds read state for a single followed file
type tailFile struct {
	source  string
	path    string
	file    *os.File
	offset  int64
	partial []byte
}

// tailer implements the Tailer interface
type tailer struct {
	cfg       *config.Config
	buf       *Buffer
	filter    Filter
	fsWatcher *fsnotify.Watcher
	files     map[string]*tailFile
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewTailer creates a new Tailer instance
func NewTailer(cfg *config.Config, buf *Buffer, log logger.Logger) (Tailer, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	f, err := NewFilter(cfg.Filter.Include, cfg.Filter.Exclude)
	if err != nil {
		return nil, err
	}

	return &tailer{
		cfg:       cfg,
		buf:       buf,
		filter:    f,
		fsWatcher: fsw,
		files:     make(map[string]*tailFile),
		log:       log.WithComponent("TAILER"),
	}, nil
}

// Start opens the sources and begins following them until ctx ends
func (t *tailer) Start(ctx context.Context, sources []*config.Source) error {
	if len(sources) == 0 {
		return errors.ErrNoSources
	}

	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()
		return errors.ErrTailerClosed
	}

	for _, src := range sources {
		if err := t.open(src); err != nil {
			t.mu.Unlock()
			return err
		}
	}

	dirs := make(map[string]bool)

	for path := range t.files {
		dirs[filepath.Dir(path)] = true
	}

	for dir := range dirs {
		if err := t.fsWatcher.Add(dir); err != nil {
			t.mu.Unlock()
			return errors.ErrFailedToWatchSource
		}
	}

	t.mu.Unlock()

	go t.processEvents(ctx)

	return nil
}

// open prepares a single source file for tailing
func (t *tailer) open(src *config.Source) error {
	path, err := filepath.Abs(src.Path)
	if err != nil {
		return errors.ErrSourceNotFound
	}

	file, err := os.Open(path) // #nosec G304 -- path comes from user config
	if err != nil {
		return errors.ErrSourceNotFound
	}

	tf := &tailFile{source: src.Name, path: path, file: file}

	if t.cfg.Stream.Replay {
		t.drain(tf)
	} else {
		offset, err := file.Seek(0, io.SeekEnd)
		if err == nil {
			tf.offset = offset
		}
	}

	t.files[path] = tf

	return nil
}

// processEvents reads fsnotify events until the context ends
func (t *tailer) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			t.Close()
			return

		case event, ok := <-t.fsWatcher.Events:
			if !ok {
				return
			}

			t.handleEvent(event)

		case err, ok := <-t.fsWatcher.Errors:
			if !ok {
				return
			}

			t.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// handleEvent reacts to a single filesystem event
func (t *tailer) handleEvent(event fsnotify.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	tf, tracked := t.files[event.Name]
	if !tracked {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Write):
		t.drain(tf)
	case event.Op.Has(fsnotify.Create):
		// file was rotated back into place
		t.reopen(tf)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		t.log.Debug().Str("path", tf.path).Msg("source moved away, waiting for recreation")
	}
}

// reopen re-establishes the handle after rotation
func (t *tailer) reopen(tf *tailFile) {
	if tf.file != nil {
		_ = tf.file.Close()
	}

	file, err := os.Open(tf.path) // #nosec G304 -- path comes from user config
	if err != nil {
		t.log.Warn().Err(err).Str("path", tf.path).Msg("failed to reopen source")
		return
	}

	tf.file = file
	tf.offset = 0
	tf.partial = nil

	t.drain(tf)
}

// drain reads everything appended since the last read
func (t *tailer) drain(tf *tailFile) {
	info, err := tf.file.Stat()
	if err != nil {
		return
	}

	// truncation resets the read position
	if info.Size() < tf.offset {
		if _, err := tf.file.Seek(0, io.SeekStart); err != nil {
			return
		}

		tf.offset = 0
		tf.partial = nil
	}

	data, err := io.ReadAll(tf.file)
	if err != nil && len(data) == 0 {
		return
	}

	tf.offset += int64(len(data))

	t.ingest(tf, data)
}

// ingest splits appended bytes into lines and buffers matching rows
func (t *tailer) ingest(tf *tailFile, data []byte) {
	data = append(tf.partial, data...)
	now := time.Now()

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}

		line := string(bytes.TrimRight(data[:idx], "\r"))
		data = data[idx+1:]

		if line == "" {
			continue
		}

		if !t.filter.Match(line) {
			continue
		}

		t.buf.Append(NewRow(now, tf.source, line))
	}

	tf.partial = data
}

// Close releases the watcher and all file handles
func (t *tailer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.closed = true
	_ = t.fsWatcher.Close()

	for _, tf := range t.files {
		if tf.file != nil {
			_ = tf.file.Close()
		}
	}
}
