// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for New.

package session

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/scheduler"
)

// settings is the resolved configuration of a Session.
type settings struct {
	stepDelay     time.Duration
	clock         scheduler.Clock
	logger        *slog.Logger
	nodeRadius    float64
	editLock      bool
	defaultWeight int64
	engineOpts    []dijkstra.Option
	tracer        trace.TracerProvider
}

// Option configures a Session.
type Option func(*settings)

// WithStepDelay sets the pause between two animated steps (default 600ms).
func WithStepDelay(d time.Duration) Option {
	return func(s *settings) { s.stepDelay = d }
}

// WithClock replaces the scheduler clock, typically with a scheduler.FakeClock.
func WithClock(c scheduler.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithNodeRadius sets the hit-test radius of new nodes.
func WithNodeRadius(r float64) Option {
	return func(s *settings) { s.nodeRadius = r }
}

// WithEditLock controls whether edits are refused while a run is in progress
// (default true).
func WithEditLock(on bool) Option {
	return func(s *settings) { s.editLock = on }
}

// WithDefaultWeight sets the initial edge weight of the controller.
func WithDefaultWeight(w int64) Option {
	return func(s *settings) { s.defaultWeight = w }
}

// WithEngineOptions appends options passed to every engine and to Paths.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(s *settings) { s.engineOpts = append(s.engineOpts, opts...) }
}

// WithTracerProvider sets the provider used for run spans (default: the global one).
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) { s.tracer = tp }
}
