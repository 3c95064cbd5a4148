// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: run lifecycle: start, timed advance, stop and result publication.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/internal/metrics"
)

// Run starts an animated shortest-path run from start and returns its id.
//
// Steps:
//  1. Validate: ErrEmptyGraph when no nodes exist; a wrapped
//     dijkstra.ErrInvalidStart when start is unknown. A failed validation
//     leaves any run in progress untouched.
//  2. Cancel the pending step of the previous run, if any.
//  3. Initialise a fresh engine and perform the first step immediately.
//  4. Hand the remaining steps to the scheduler.
func (s *Session) Run(ctx context.Context, start int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1) Validate.
	if s.closed {
		return "", ErrClosed
	}
	if s.graph.NodeCount() == 0 {
		return "", ErrEmptyGraph
	}
	if !s.graph.HasNode(start) {
		return "", fmt.Errorf("session: run: %w: node %d", dijkstra.ErrInvalidStart, start)
	}

	// 2) Supersede.
	s.cancelRunLocked(metrics.CauseSuperseded)

	// 3) Fresh engine.
	engine := dijkstra.NewEngine(s.graph, s.cfg.engineOpts...)
	if err := engine.Initialize(start); err != nil {
		return "", fmt.Errorf("session: run: %w", err)
	}

	r := &run{
		id:      uuid.NewString(),
		engine:  engine,
		started: time.Now(),
	}
	_, r.span = s.tracer.Start(ctx, "session.run", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.String("run.id", r.id),
		attribute.Int("run.start", start),
		attribute.Int("graph.nodes", s.graph.NodeCount()),
		attribute.Int("graph.edges", s.graph.EdgeCount()),
	))
	s.run = r
	metrics.RunsStarted.Inc()
	ctxlog.FromContextOr(ctx, s.log).Info("run started",
		slog.String("run", r.id), slog.Int("start", start), slog.Int("nodes", s.graph.NodeCount()))

	// 4) First step inline, the rest on the scheduler.
	if s.advanceLocked() {
		id := r.id
		s.sched.Start(func() bool { return s.advance(id) })
	}

	return r.id, nil
}

// advance performs one scheduled step of run id; it reports whether more remain.
func (s *Session) advance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.run == nil || s.run.id != id || s.run.finished {
		return false // stale callback
	}

	return s.advanceLocked()
}

// advanceLocked steps the current run once. Caller holds mu and s.run is unfinished.
func (s *Session) advanceLocked() bool {
	// 1) One engine step; a failure ends the run.
	r := s.run
	res, err := r.engine.Step()
	if err != nil {
		s.log.Error("run step failed", slog.String("run", r.id), slog.String("error", err.Error()))
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.span.End()
		r.finished = true
		return false
	}

	// 2) Publish the step.
	metrics.StepsExecuted.Inc()
	state := r.engine.Snapshot()
	s.log.Debug("run step",
		slog.String("run", r.id), slog.Int("node", res.Node), slog.Int("steps", state.Steps))
	s.emitLocked(Event{Kind: StepAdvanced, RunID: r.id, Step: &res, State: &state})

	if !res.Done {
		return true
	}

	// 3) Finalise and publish the result.
	result, _ := r.engine.Result()
	r.finished = true
	metrics.RunsCompleted.Inc()
	metrics.StepsPerRun.Observe(float64(state.Steps))
	r.span.SetAttributes(
		attribute.Int("run.steps", state.Steps),
		attribute.Int("run.unreachable", len(result.Unreachable())),
	)
	r.span.End()
	s.log.Info("run finished",
		slog.String("run", r.id), slog.Int("steps", state.Steps), slog.Duration("elapsed", time.Since(r.started)))
	s.emitLocked(Event{Kind: ResultReady, RunID: r.id, Result: result})

	return false
}

// cancelRunLocked abandons an unfinished run. Caller holds mu.
func (s *Session) cancelRunLocked(cause string) {
	s.sched.Cancel()
	if !s.runningLocked() {
		return
	}
	r := s.run
	r.finished = true
	r.span.SetStatus(codes.Error, "cancelled: "+cause)
	r.span.End()
	metrics.RunsCancelled.WithLabelValues(cause).Inc()
	s.log.Info("run cancelled", slog.String("run", r.id), slog.String("cause", cause))
	s.emitLocked(Event{Kind: RunCancelled, RunID: r.id, Cause: cause})
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runningLocked()
}

// RunSnapshot returns the state of the latest run, and false if there is none.
func (s *Session) RunSnapshot() (dijkstra.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return dijkstra.Snapshot{}, false
	}

	return s.run.engine.Snapshot(), true
}

// Result returns the report of the latest run once it has finished.
// Returns ErrNoResult when there is no run, or it was cancelled or is still going.
func (s *Session) Result() (*dijkstra.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return nil, ErrNoResult
	}
	res, err := s.run.engine.Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResult, err)
	}

	return res, nil
}

// Paths computes all shortest paths from start in one call, without
// touching the animated run.
func (s *Session) Paths(start int) (*dijkstra.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	res, err := dijkstra.Compute(s.graph, start, s.cfg.engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: paths: %w", err)
	}

	return res, nil
}

// Wait blocks until the scheduled steps of the current run are exhausted or
// ctx is done. It must not be called from a listener.
func (s *Session) Wait(ctx context.Context) error {
	return s.sched.Wait(ctx)
}

// SetStepDelay changes the pause between steps from the next step on.
func (s *Session) SetStepDelay(d time.Duration) {
	s.sched.SetDelay(d)
}

// StepDelay returns the pause between steps.
func (s *Session) StepDelay() time.Duration {
	return s.sched.Delay()
}
