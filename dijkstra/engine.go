// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: the incremental engine (Initialize, Step, Run, Snapshot, Result).

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

// Engine runs Dijkstra one finalised node at a time.
type Engine struct {
	g    View
	opts Options

	phase   Phase
	start   int
	current int
	steps   int

	order     []int         // node IDs captured at Initialize, insertion order
	dist      map[int]int64 // node ID → tentative or final distance
	prev      map[int]int   // node ID → predecessor or NoNode
	visited   []int         // finalisation order
	isVisited map[int]bool
	unvisited []int // subsequence of order not yet finalised

	result *Result
}

// NewEngine binds an engine to g. The engine starts in NotRunning.
// Complexity: O(1).
func NewEngine(g View, opts ...Option) *Engine {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Engine{g: g, opts: cfg, start: NoNode, current: NoNode}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Steps returns how many nodes have been finalised in the current run.
func (e *Engine) Steps() int { return e.steps }

// Initialize discards any prior run and seeds a new one from start.
//
// Steps:
//  1. Validate the graph and start node (ErrNilGraph, ErrInvalidStart).
//  2. Pre-scan edges for negative weights (ErrNegativeWeight).
//  3. distance[start]=0, distance[n]=Infinity otherwise, predecessor[n]=NoNode.
//  4. unvisited = all node IDs in insertion order, visited = ∅, phase = Running.
//
// On error the engine state is left untouched.
// Complexity: O(V + E).
func (e *Engine) Initialize(start int) error {
	if e.g == nil {
		return ErrNilGraph
	}
	if !e.g.HasNode(start) {
		return fmt.Errorf("%w: node %d", ErrInvalidStart, start)
	}
	if err := scanNegative(e.g); err != nil {
		return err
	}

	ids := e.g.NodeIDs()
	e.order = ids
	e.dist = make(map[int]int64, len(ids))
	e.prev = make(map[int]int, len(ids))
	e.isVisited = make(map[int]bool, len(ids))
	e.visited = make([]int, 0, len(ids))
	e.unvisited = make([]int, len(ids))
	copy(e.unvisited, ids)

	var id int
	for _, id = range ids {
		e.dist[id] = Infinity
		e.prev[id] = NoNode
	}
	e.dist[start] = 0

	e.start = start
	e.current = start
	e.steps = 0
	e.result = nil
	e.phase = Running

	return nil
}

// Step finalises the unvisited node with the minimum distance and relaxes its
// neighbours. The step that finalises the last node also moves the engine to
// Done, so a run over N nodes takes at most N steps.
//
// Steps:
//  1. Require Running (ErrNotRunning).
//  2. If unvisited is empty, finish.
//  3. Select m = argmin distance over unvisited, first in order on ties.
//     With StopAtUnreachable and distance[m] = Infinity, finish instead.
//  4. Move m to visited; current = m.
//  5. Relax every unvisited neighbour of m with strict <.
//  6. If unvisited became empty, finish.
//
// Complexity: O(V + deg(m)).
func (e *Engine) Step() (StepResult, error) {
	if e.phase != Running {
		return StepResult{Node: NoNode}, ErrNotRunning
	}
	if len(e.unvisited) == 0 {
		e.finish()
		return StepResult{Node: NoNode, Done: true}, nil
	}

	// 3) Linear scan; only a strictly smaller distance displaces the candidate.
	best := 0
	var i int
	for i = 1; i < len(e.unvisited); i++ {
		if e.dist[e.unvisited[i]] < e.dist[e.unvisited[best]] {
			best = i
		}
	}
	m := e.unvisited[best]
	dm := e.dist[m]
	if e.opts.StopAtUnreachable && dm == Infinity {
		e.finish()
		return StepResult{Node: NoNode, Done: true}, nil
	}

	// 4) Finalise m.
	e.unvisited = append(e.unvisited[:best], e.unvisited[best+1:]...)
	e.visited = append(e.visited, m)
	e.isVisited[m] = true
	e.current = m
	e.steps++
	if e.opts.OnFinalize != nil {
		e.opts.OnFinalize(m, dm)
	}

	res := StepResult{Node: m, Distance: dm}

	// 5) Relax.
	if dm != Infinity {
		relaxed, err := e.relax(m, dm)
		if err != nil {
			return res, err
		}
		res.Relaxed = relaxed
	}

	// 6) Last node finalised.
	if len(e.unvisited) == 0 {
		e.finish()
		res.Done = true
	}

	return res, nil
}

// relax updates neighbours of m whose distance improves through m.
func (e *Engine) relax(m int, dm int64) ([]int, error) {
	nbs, err := e.g.Neighbors(m)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: neighbors of %d: %w", m, err)
	}

	var relaxed []int
	var nb int
	var w, cur, alt int64
	var known, ok bool
	for i := range nbs {
		nb = nbs[i].ID
		cur, known = e.dist[nb]
		if !known || e.isVisited[nb] {
			continue // added after Initialize, or already final
		}
		w, ok = lookupWeight(e.g, m, nb)
		if !ok || w >= e.opts.InfEdgeThreshold {
			continue
		}
		alt = addSat(dm, w)
		if alt > e.opts.MaxDistance || alt >= cur {
			continue
		}
		e.dist[nb] = alt
		e.prev[nb] = m
		relaxed = append(relaxed, nb)
		if e.opts.OnRelax != nil {
			e.opts.OnRelax(m, nb, alt)
		}
	}

	return relaxed, nil
}

// Run steps until Done and returns the result.
// Returns ErrNotRunning if Initialize has not been called.
// Complexity: O(V² + E).
func (e *Engine) Run() (*Result, error) {
	if e.phase == Done {
		return e.result, nil
	}
	for {
		res, err := e.Step()
		if err != nil {
			return nil, err
		}
		if res.Done {
			return e.result, nil
		}
	}
}

// Result returns the report of the finished run.
// Returns ErrNotDone unless the engine is in Done.
func (e *Engine) Result() (*Result, error) {
	if e.phase != Done {
		return nil, ErrNotDone
	}

	return e.result, nil
}

// Snapshot returns a deep copy of the engine state.
// Complexity: O(V).
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        e.phase,
		Start:        e.start,
		Current:      e.current,
		Steps:        e.steps,
		Distances:    make(map[int]int64, len(e.dist)),
		Predecessors: make(map[int]int, len(e.prev)),
		Visited:      append([]int(nil), e.visited...),
		Unvisited:    append([]int(nil), e.unvisited...),
	}
	var id int
	for _, id = range e.order {
		s.Distances[id] = e.dist[id]
		s.Predecessors[id] = e.prev[id]
	}
	if e.phase != Running {
		return s
	}

	s.Status = make(map[int]NodeStatus, len(e.order))
	for _, id = range e.order {
		switch {
		case id == e.start:
			s.Status[id] = StatusStart
		case id == e.current:
			s.Status[id] = StatusCurrent
		case e.isVisited[id]:
			s.Status[id] = StatusVisited
		default:
			s.Status[id] = StatusDefault
		}
	}

	return s
}

// finish moves the engine to Done and builds the report once.
func (e *Engine) finish() {
	e.phase = Done
	e.result = buildResult(e.start, e.order, e.dist, e.prev)
}

// lookupWeight returns the weight of the edge joining a and b.
func lookupWeight(g View, a, b int) (int64, bool) {
	e, ok := g.EdgeBetween(a, b)
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// addSat returns a+b saturated at Infinity. Both operands are non-negative.
func addSat(a, b int64) int64 {
	if a == Infinity || b > Infinity-a {
		return Infinity
	}

	return a + b
}

// scanNegative fails fast on the first negative edge weight.
func scanNegative(g View) error {
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}
