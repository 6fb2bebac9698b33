// Package loop paces frame callbacks against a host refresh signal.
package loop

import (
	"context"
	"sync/atomic"
	"time"
)

// Scheduler invokes a registered frame callback once per host refresh until
// it is stopped. The host owns timing: it calls Refresh whenever the display
// is ready for a new frame.
type Scheduler struct {
	onFrame func()
	stopped atomic.Bool
	inFrame bool
	frames  uint64
}

// New returns an idle scheduler with no callback registered.
func New() *Scheduler {
	return &Scheduler{}
}

// Run registers onFrame as the per-refresh callback.
func (s *Scheduler) Run(onFrame func()) {
	s.onFrame = onFrame
}

// Refresh runs one frame. It reports false when nothing ran because the
// scheduler is stopped, has no callback, or is already inside a frame.
func (s *Scheduler) Refresh() bool {
	if s.onFrame == nil || s.inFrame || s.stopped.Load() {
		return false
	}
	s.inFrame = true
	defer func() { s.inFrame = false }()
	s.onFrame()
	s.frames++
	return true
}

// Stop prevents any further frames. It is safe to call from inside the frame
// callback and from other goroutines.
func (s *Scheduler) Stop() { s.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool { return s.stopped.Load() }

// Frames returns the number of completed frame callbacks.
func (s *Scheduler) Frames() uint64 { return s.frames }

// RunTicker drives s from a ticker firing every interval until s is stopped
// or ctx is done. It returns ctx.Err() on cancellation and nil on Stop.
func RunTicker(ctx context.Context, s *Scheduler, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !s.Stopped() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Refresh()
		}
	}
	return nil
}
