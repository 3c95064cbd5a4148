// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, constants, View, Options, Phase, NodeStatus, StepResult, Snapshot.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathboard/core"
)

// Sentinel errors returned by the engine and the instant solver.
var (
	// ErrNilGraph indicates that a nil View was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidStart indicates that the start node is not present in the graph.
	ErrInvalidStart = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNotRunning indicates Step was called while no run is in progress.
	ErrNotRunning = errors.New("dijkstra: engine is not running")

	// ErrNotDone indicates Result was requested before the run reached Done.
	ErrNotDone = errors.New("dijkstra: run has not finished")

	// ErrBadInfThreshold indicates InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

const (
	// Infinity is the distance of a node not (yet) reached from start.
	Infinity int64 = math.MaxInt64

	// NoNode marks an absent predecessor or an absent current node.
	NoNode = -1
)

// View is the read-only subset of *core.Graph the engine depends on.
type View interface {
	NodeIDs() []int
	HasNode(id int) bool
	Neighbors(id int) ([]core.Node, error)
	EdgeBetween(a, b int) (core.Edge, bool)
	Edges() []core.Edge
}

// Phase is the engine lifecycle state.
type Phase int

const (
	// NotRunning is the phase before the first Initialize.
	NotRunning Phase = iota
	// Running means Step may be called.
	Running
	// Done means every node has been finalised (or only unreachable ones remained).
	Done
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case NotRunning:
		return "not_running"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// NodeStatus is the per-node visual state reported while a run is in progress.
type NodeStatus int

const (
	// StatusDefault is a node not yet finalised.
	StatusDefault NodeStatus = iota
	// StatusVisited is a finalised node.
	StatusVisited
	// StatusCurrent is the most recently finalised node.
	StatusCurrent
	// StatusStart is the node that seeded the run.
	StatusStart
)

// String returns the wire name of the status.
func (s NodeStatus) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusCurrent:
		return "current"
	case StatusVisited:
		return "visited"
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s NodeStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Options configures an Engine or a Compute call.
//
// StopAtUnreachable – finish once every remaining node is at +∞.
// InfEdgeThreshold  – edges with weight >= threshold are impassable. Default Infinity.
// MaxDistance       – tentative distances above this cap are discarded. Default Infinity.
// OnFinalize        – called with each finalised node and its distance.
// OnRelax           – called after each successful relaxation from→to.
type Options struct {
	StopAtUnreachable bool
	InfEdgeThreshold  int64
	MaxDistance       int64
	OnFinalize        func(id int, dist int64)
	OnRelax           func(from, to int, dist int64)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns the defaults: no early stop, no walls, no cap, no hooks.
func DefaultOptions() Options {
	return Options{
		StopAtUnreachable: false,
		InfEdgeThreshold:  Infinity,
		MaxDistance:       Infinity,
	}
}

// WithStopAtUnreachable makes the run finish as soon as only +∞ nodes remain
// unvisited. Those nodes are then never finalised, but are still reported unreachable.
func WithStopAtUnreachable() Option {
	return func(o *Options) { o.StopAtUnreachable = true }
}

// WithInfEdgeThreshold treats edges with weight >= threshold as impassable.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithMaxDistance discards tentative distances greater than max, so nodes
// farther than max are reported unreachable. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithOnFinalize registers a hook called when a node leaves the unvisited set.
func WithOnFinalize(fn func(id int, dist int64)) Option {
	return func(o *Options) { o.OnFinalize = fn }
}

// WithOnRelax registers a hook called when distance[to] improves through from.
func WithOnRelax(fn func(from, to int, dist int64)) Option {
	return func(o *Options) { o.OnRelax = fn }
}

// StepResult describes the effect of one Step.
type StepResult struct {
	// Node is the node finalised by this step, or NoNode if none was.
	Node int `json:"node"`
	// Distance is the final distance of Node.
	Distance int64 `json:"distance"`
	// Relaxed lists neighbours whose distance improved, in neighbour order.
	Relaxed []int `json:"relaxed,omitempty"`
	// Done reports that this step moved the engine to Done.
	Done bool `json:"done"`
}

// Snapshot is a copy of the engine state suitable for rendering.
//
// Distances and Predecessors are keyed by node ID and hold Infinity / NoNode
// for unreached entries. Status is populated only during the Running phase.
type Snapshot struct {
	Phase        Phase              `json:"phase"`
	Start        int                `json:"start"`
	Current      int                `json:"current"`
	Steps        int                `json:"steps"`
	Distances    map[int]int64      `json:"distances"`
	Predecessors map[int]int        `json:"predecessors"`
	Visited      []int              `json:"visited"`
	Unvisited    []int              `json:"unvisited"`
	Status       map[int]NodeStatus `json:"status,omitempty"`
}
