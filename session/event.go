// SPDX-License-Identifier: MIT
//
// File: event.go
// Role: Event kinds and listener registration.

package session

import (
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// EventKind classifies a session notification.
type EventKind int

const (
	// GraphChanged follows every successful graph mutation and every reset.
	GraphChanged EventKind = iota
	// StepAdvanced follows every engine step.
	StepAdvanced
	// ResultReady is emitted once when a run reaches Done.
	ResultReady
	// RunCancelled is emitted when an unfinished run is superseded, reset or closed.
	RunCancelled
)

// String returns the wire name of the kind.
func (k EventKind) String() string {
	switch k {
	case GraphChanged:
		return "graph_changed"
	case StepAdvanced:
		return "step_advanced"
	case ResultReady:
		return "result_ready"
	case RunCancelled:
		return "run_cancelled"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event is one notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind            `json:"kind"`
	Session string               `json:"session"`
	RunID   string               `json:"run_id,omitempty"`
	Graph   *core.Snapshot       `json:"graph,omitempty"`
	Step    *dijkstra.StepResult `json:"step,omitempty"`
	State   *dijkstra.Snapshot   `json:"state,omitempty"`
	Result  *dijkstra.Result     `json:"result,omitempty"`
	Cause   string               `json:"cause,omitempty"`
}
