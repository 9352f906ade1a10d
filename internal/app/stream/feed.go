package stream

import (
	"context"
	"time"
)

// Feed publishes wholesale result snapshots on a fixed cadence while
// rows keep arriving. The viewer consumes these over Updates; pausing
// the viewer never blocks the feed.
type Feed interface {
	Updates() <-chan *Result
	Run(ctx context.Context)
}

// feed implements the Feed interface
type feed struct {
	buf      *Buffer
	interval time.Duration
	out      chan *Result
}

// NewFeed creates a feed that snapshots buf every interval
func NewFeed(buf *Buffer, interval time.Duration) Feed {
	return &feed{
		buf:      buf,
		interval: interval,
		out:      make(chan *Result, 1),
	}
}

// Updates returns the snapshot delivery channel
func (f *feed) Updates() <-chan *Result {
	return f.out
}

// Run publishes snapshots until the context ends, then closes Updates
func (f *feed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	defer close(f.out)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := f.buf.Snapshot()
			if result == nil {
				continue
			}

			select {
			case f.out <- result:
			default:
				// consumer is behind; drop the older snapshot
				select {
				case <-f.out:
				default:
				}
				f.out <- result
			}
		}
	}
}
