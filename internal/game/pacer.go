package game

import (
	"context"
	"time"
)

// Pacer inserts the externally-visible beat between AI turn steps. Pacing is
// purely presentational; it carries no state-machine semantics and may be a
// no-op.
type Pacer interface {
	Wait(ctx context.Context)
}

type noopPacer struct{}

func (noopPacer) Wait(context.Context) {}

// NewNoopPacer returns a pacer that never waits. Used by tests and the CLI.
func NewNoopPacer() Pacer {
	return noopPacer{}
}

type delayPacer struct {
	d time.Duration
}

// NewDelayPacer returns a pacer that waits a fixed duration, cut short if
// the context is done.
func NewDelayPacer(d time.Duration) Pacer {
	return delayPacer{d: d}
}

func (p delayPacer) Wait(ctx context.Context) {
	if p.d <= 0 {
		return
	}
	t := time.NewTimer(p.d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
