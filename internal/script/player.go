// SPDX-License-Identifier: MIT
//
// File: player.go
// Role: script playback against a session.

package script

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/session"
)

// DefaultWaitTimeout bounds every wait step.
const DefaultWaitTimeout = time.Minute

// StepReport records the effect of one step.
type StepReport struct {
	Index  int    `json:"index"`
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Report is the outcome of a replay.
type Report struct {
	Script string       `json:"script"`
	Steps  []StepReport `json:"steps"`
	// Results holds one report per wait step that found a finished run and
	// per paths step, in script order.
	Results []*dijkstra.Result `json:"results"`
}

// Player replays scripts against one session.
type Player struct {
	s           *session.Session
	waitTimeout time.Duration
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithWaitTimeout bounds each wait step (default DefaultWaitTimeout).
func WithWaitTimeout(d time.Duration) PlayerOption {
	return func(p *Player) { p.waitTimeout = d }
}

// NewPlayer creates a player driving s.
func NewPlayer(s *session.Session, opts ...PlayerOption) *Player {
	p := &Player{s: s, waitTimeout: DefaultWaitTimeout}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play executes every step of sc in order. A failing step aborts the replay
// unless it sets AllowError; the partial report is returned either way.
func (p *Player) Play(ctx context.Context, sc *Script) (*Report, error) {
	log := ctxlog.FromContext(ctx).With(slog.String("script", sc.Name))
	rep := &Report{Script: sc.Name, Steps: make([]StepReport, 0, len(sc.Steps))}

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		// 1) Resolve the step kind.
		kind, err := st.Kind()
		if err != nil {
			return rep, fmt.Errorf("step %d: %w", i+1, err)
		}

		// 2) Execute and record.
		sr := StepReport{Index: i + 1, Kind: kind}
		detail, res, err := p.exec(ctx, kind, st)
		sr.Detail = detail
		if res != nil {
			rep.Results = append(rep.Results, res)
		}
		// 3) Abort unless the failure is allowed.
		if err != nil {
			sr.Err = err.Error()
			rep.Steps = append(rep.Steps, sr)
			if !st.AllowError {
				return rep, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
			}
			log.Info("step failed as allowed", slog.Int("step", i+1), slog.String("error", err.Error()))
			continue
		}
		rep.Steps = append(rep.Steps, sr)
		log.Debug("step done", slog.Int("step", i+1), slog.String("kind", string(kind)), slog.String("detail", detail))
	}

	return rep, nil
}

// exec runs one command and describes its effect.
func (p *Player) exec(ctx context.Context, kind Kind, st Step) (string, *dijkstra.Result, error) {
	switch kind {
	case KindMode:
		m, err := editor.ParseMode(*st.Mode)
		if err != nil {
			return "", nil, err
		}
		p.s.SetMode(m)
		return m.String(), nil, nil

	case KindWeight:
		return fmt.Sprintf("weight=%d", p.s.SetWeight(*st.Weight)), nil, nil

	case KindClick:
		out, err := p.s.Click(ctx, st.Click.X, st.Click.Y)
		if err != nil {
			return "", nil, err
		}
		return describeOutcome(out), nil, nil

	case KindPreset:
		con, opts, err := st.Preset.Resolve()
		if err != nil {
			return "", nil, err
		}
		if err := p.s.ApplyPreset(ctx, opts, con); err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s n=%d", st.Preset.Name, st.Preset.N), nil, nil

	case KindRun:
		id, err := p.s.Run(ctx, *st.Run)
		if err != nil {
			return "", nil, err
		}
		return "run " + id, nil, nil

	case KindWait:
		wctx, cancel := context.WithTimeout(ctx, p.waitTimeout)
		defer cancel()
		if err := p.s.Wait(wctx); err != nil {
			return "", nil, err
		}
		res, err := p.s.Result()
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("result from %d", res.Start), res, nil

	case KindPaths:
		res, err := p.s.Paths(*st.Paths)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("paths from %d", res.Start), res, nil

	case KindDelay:
		d, err := time.ParseDuration(*st.Delay)
		if err != nil {
			return "", nil, err
		}
		if d <= 0 {
			return "", nil, fmt.Errorf("script: delay must be positive, got %s", d)
		}
		p.s.SetStepDelay(d)
		return d.String(), nil, nil

	case KindReset:
		return "", nil, p.s.Reset(ctx)

	default:
		return "", nil, fmt.Errorf("%w: %q", ErrBadStep, kind)
	}
}

func describeOutcome(out editor.Outcome) string {
	switch {
	case out.Node != nil && out.Kind == editor.NodeAdded:
		return fmt.Sprintf("node %d at (%g,%g)", out.Node.ID, out.Node.X, out.Node.Y)
	case out.Node != nil:
		return fmt.Sprintf("selected node %d", out.Node.ID)
	case out.Edge != nil:
		return fmt.Sprintf("edge %d-%d weight=%d", out.Edge.From, out.Edge.To, out.Edge.Weight)
	default:
		return out.Kind.String()
	}
}
