// SPDX-License-Identifier: MIT
//
// File: scheduler.go
// Role: generation-guarded timer that drives a step function until it reports done.

package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the pause between two steps.
const DefaultDelay = 600 * time.Millisecond

// StepFunc performs one step and reports whether another step should follow.
type StepFunc func() bool

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDelay sets the pause between steps. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithClock replaces the real clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used for drive lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// Scheduler drives one StepFunc at a time on a fixed cadence.
type Scheduler struct {
	mu    sync.Mutex
	clock Clock
	delay time.Duration
	log   *slog.Logger

	gen   uint64        // bumped by every Start and Cancel
	fn    StepFunc      // nil when idle
	timer Timer         // pending timer, nil while fn runs or when idle
	done  chan struct{} // closed when the current drive ends
	steps int           // steps fired in the current drive
}

// New creates an idle Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: RealClock(),
		delay: DefaultDelay,
		log:   slog.Default(),
	}
	var opt Option
	for _, opt = range opts {
		opt(s)
	}

	return s
}

// Delay returns the current pause between steps.
func (s *Scheduler) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.delay
}

// SetDelay changes the pause; it applies from the next armed step.
// Non-positive values are ignored.
func (s *Scheduler) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// Active reports whether a drive is in progress.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fn != nil
}

// Start begins driving fn: the first call happens after one delay, and each
// call returning true arms the next. Any drive in progress is cancelled first.
func (s *Scheduler) Start(fn StepFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.fn = fn
	s.done = make(chan struct{})
	s.steps = 0
	s.armLocked(s.gen)
	s.log.Debug("scheduler: drive started", slog.Uint64("gen", s.gen), slog.Duration("delay", s.delay))
}

// Cancel stops the drive in progress, if any, and reports whether one was active.
// After Cancel returns no step of the cancelled drive will begin.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.fn != nil
	s.cancelLocked()
	if active {
		s.log.Debug("scheduler: drive cancelled", slog.Uint64("gen", s.gen))
	}

	return active
}

// Wait blocks until the current drive ends or ctx is done.
// It returns nil immediately when no drive is active.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cancelLocked invalidates the current generation. Caller holds mu.
func (s *Scheduler) cancelLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.endLocked()
}

// endLocked releases waiters of the current drive. Caller holds mu.
func (s *Scheduler) endLocked() {
	s.fn = nil
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

// armLocked schedules fire(gen) after the delay. Caller holds mu.
func (s *Scheduler) armLocked(gen uint64) {
	s.timer = s.clock.AfterFunc(s.delay, func() { s.fire(gen) })
}

// fire runs one step of drive gen.
func (s *Scheduler) fire(gen uint64) {
	// 1) Drop timers from a cancelled or superseded drive.
	s.mu.Lock()
	if gen != s.gen || s.fn == nil {
		s.mu.Unlock()
		return // stale timer
	}
	// 2) Claim the step and run it without holding the lock.
	fn := s.fn
	s.timer = nil
	s.steps++
	s.mu.Unlock()

	more := fn()

	// 3) Re-arm or finish, unless the drive changed while fn ran.
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return // cancelled or superseded while fn ran
	}
	if more {
		s.armLocked(gen)
		return
	}
	s.log.Debug("scheduler: drive finished", slog.Uint64("gen", gen), slog.Int("steps", s.steps))
	s.endLocked()
}
