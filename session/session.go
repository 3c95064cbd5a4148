// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session type joining graph, editor, engine and scheduler.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/internal/metrics"
	"github.com/katalvlaran/pathboard/scheduler"
)

// Sentinel errors returned by Session commands.
var (
	// ErrEmptyGraph indicates Run was requested on a graph without nodes.
	ErrEmptyGraph = errors.New("session: graph has no nodes")

	// ErrRunInProgress indicates an edit was refused because a run is in progress.
	ErrRunInProgress = errors.New("session: run in progress")

	// ErrNoResult indicates no finished run is available.
	ErrNoResult = errors.New("session: no result available")

	// ErrClosed indicates the session has been closed.
	ErrClosed = errors.New("session: closed")
)

const tracerName = "github.com/katalvlaran/pathboard/session"

// run is the bookkeeping of one engine run.
type run struct {
	id       string
	engine   *dijkstra.Engine
	span     trace.Span
	started  time.Time
	finished bool
}

// Session is one editing canvas with its run state.
type Session struct {
	mu sync.Mutex

	id     string
	cfg    settings
	log    *slog.Logger
	tracer trace.Tracer

	graph  *core.Graph
	editor *editor.Controller
	sched  *scheduler.Scheduler
	run    *run // nil before the first run and after Reset

	listeners    map[int]func(Event)
	nextListener int
	closed       bool
}

// New creates an empty session in Idle mode.
func New(opts ...Option) *Session {
	cfg := settings{
		stepDelay:     scheduler.DefaultDelay,
		nodeRadius:    core.DefaultNodeRadius,
		editLock:      true,
		defaultWeight: editor.DefaultWeight,
	}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.GetTracerProvider()
	}
	if cfg.nodeRadius <= 0 {
		cfg.nodeRadius = core.DefaultNodeRadius
	}

	s := &Session{
		id:        uuid.NewString(),
		cfg:       cfg,
		tracer:    cfg.tracer.Tracer(tracerName),
		listeners: make(map[int]func(Event)),
	}
	s.log = cfg.logger.With(slog.String("session", s.id))
	s.graph = core.NewGraph(
		core.WithNodeRadius(cfg.nodeRadius),
		core.WithOnChange(countChange),
	)
	s.editor = editor.New(s.graph)
	s.editor.SetWeight(cfg.defaultWeight)

	schedOpts := []scheduler.Option{
		scheduler.WithDelay(cfg.stepDelay),
		scheduler.WithLogger(s.log),
	}
	if cfg.clock != nil {
		schedOpts = append(schedOpts, scheduler.WithClock(cfg.clock))
	}
	s.sched = scheduler.New(schedOpts...)

	metrics.ActiveSessions.Inc()

	return s
}

// countChange feeds graph mutations into the Prometheus counters.
func countChange(c core.Change) {
	switch c.Kind {
	case core.NodeAdded:
		metrics.NodesAdded.Inc()
	case core.EdgeAdded:
		metrics.EdgesAdded.Inc()
	}
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Subscribe registers fn for every subsequent Event and returns a function
// that removes it.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextListener
	s.nextListener++
	s.listeners[key] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, key)
		s.mu.Unlock()
	}
}

// emitLocked delivers ev to every listener in registration order. Caller holds mu.
func (s *Session) emitLocked(ev Event) {
	ev.Session = s.id
	for k := 0; k < s.nextListener; k++ {
		if fn, ok := s.listeners[k]; ok {
			fn(ev)
		}
	}
}

// graphChangedLocked emits GraphChanged with a fresh snapshot. Caller holds mu.
func (s *Session) graphChangedLocked() {
	snap := s.graph.Snapshot()
	s.emitLocked(Event{Kind: GraphChanged, Graph: &snap})
}

// runningLocked reports whether an unfinished run exists. Caller holds mu.
func (s *Session) runningLocked() bool {
	return s.run != nil && !s.run.finished
}

// checkEditLocked enforces the edit lock. Caller holds mu.
func (s *Session) checkEditLocked(ctx context.Context, what string) error {
	if s.closed {
		return ErrClosed
	}
	if s.cfg.editLock && s.runningLocked() {
		metrics.EditsBlocked.Inc()
		ctxlog.FromContextOr(ctx, s.log).Warn("edit refused during run",
			slog.String("edit", what), slog.String("run", s.run.id))
		return fmt.Errorf("%s: %w", what, ErrRunInProgress)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Editing commands
// ---------------------------------------------------------------------------

// SetMode switches the interaction mode; the pending selection is cleared.
func (s *Session) SetMode(m editor.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.SetMode(m)
}

// Mode returns the interaction mode.
func (s *Session) Mode() editor.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.Mode()
}

// SetWeight coerces raw weight input and uses it for subsequent edges.
// It returns the effective weight.
func (s *Session) SetWeight(raw string) int64 {
	w := editor.ParseWeight(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.SetWeight(w)

	return w
}

// Weight returns the weight used for the next edge.
func (s *Session) Weight() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.Weight()
}

// Click forwards a canvas click to the controller.
//
// In AddingNode and AddingEdge modes the click is refused with
// ErrRunInProgress while the edit lock is on and a run is in progress.
// Store errors (core.ErrDuplicateEdge, core.ErrLoopNotAllowed) are returned
// unchanged and leave the graph untouched.
func (s *Session) Click(ctx context.Context, x, y float64) (editor.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editor.Mode() != editor.Idle {
		if err := s.checkEditLocked(ctx, "click"); err != nil {
			return editor.Outcome{Kind: editor.Ignored}, err
		}
	}

	out, err := s.editor.Click(x, y)
	if err != nil {
		metrics.EdgesRejected.WithLabelValues(rejectReason(err)).Inc()
		ctxlog.FromContextOr(ctx, s.log).Info("edge rejected", slog.String("error", err.Error()))
		return out, err
	}

	switch out.Kind {
	case editor.NodeAdded, editor.EdgeAdded:
		s.graphChangedLocked()
	}

	return out, nil
}

// rejectReason maps a store error to a metrics label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, core.ErrDuplicateEdge):
		return metrics.ReasonDuplicate
	case errors.Is(err, core.ErrLoopNotAllowed):
		return metrics.ReasonLoop
	default:
		return metrics.ReasonOther
	}
}

// ApplyPreset adds preset shapes to the graph.
// Nodes added before a constructor error stay in the graph and are announced.
func (s *Session) ApplyPreset(ctx context.Context, bopts []builder.BuilderOption, cons ...builder.Constructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditLocked(ctx, "preset"); err != nil {
		return err
	}

	before := s.graph.NodeCount() + s.graph.EdgeCount()
	err := builder.Apply(s.graph, bopts, cons...)
	if s.graph.NodeCount()+s.graph.EdgeCount() != before {
		s.graphChangedLocked()
	}
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	ctxlog.FromContextOr(ctx, s.log).Info("preset applied",
		slog.Int("nodes", s.graph.NodeCount()), slog.Int("edges", s.graph.EdgeCount()))

	return nil
}

// Graph returns a copy of the current graph.
func (s *Session) Graph() core.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Snapshot()
}

// Reset cancels any pending step, discards the run, clears the graph and
// returns the controller to Idle. Calling it repeatedly is harmless.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.cancelRunLocked(metrics.CauseReset)
	s.run = nil
	s.graph.Reset()
	s.editor.Reset()
	ctxlog.FromContextOr(ctx, s.log).Info("session reset")
	s.graphChangedLocked()

	return nil
}

// Close cancels any pending step and releases the session.
// Further commands return ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.cancelRunLocked(metrics.CauseClosed)
	s.closed = true
	s.listeners = make(map[int]func(Event))
	metrics.ActiveSessions.Dec()

	return nil
}
