// SPDX-License-Identifier: MIT
//
// File: editor.go
// Role: Controller, interaction modes and click handling over a core.Graph.

package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathboard/core"
)

// DefaultWeight is used when the weight input is absent, unparsable or zero.
const DefaultWeight int64 = 1

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("editor: unknown mode")

// Mode is the controller state.
type Mode int

const (
	// Idle ignores clicks.
	Idle Mode = iota
	// AddingNode adds a node per click.
	AddingNode
	// AddingEdge collects two node selections and joins them.
	AddingEdge
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case AddingNode:
		return "add_node"
	case AddingEdge:
		return "add_edge"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseMode.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// ParseMode maps a wire name (case-insensitive, "-" or "_") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "idle", "":
		return Idle, nil
	case "add_node", "addnode", "node":
		return AddingNode, nil
	case "add_edge", "addedge", "edge":
		return AddingEdge, nil
	default:
		return Idle, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// OutcomeKind classifies the effect of a click.
type OutcomeKind int

const (
	// Ignored means the click changed nothing.
	Ignored OutcomeKind = iota
	// NodeAdded means a node was created.
	NodeAdded
	// NodeSelected means a first endpoint was picked.
	NodeSelected
	// EdgeAdded means an edge was created.
	EdgeAdded
)

// String returns the wire name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case NodeAdded:
		return "node_added"
	case NodeSelected:
		return "node_selected"
	case EdgeAdded:
		return "edge_added"
	default:
		return "ignored"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k OutcomeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Outcome reports what a click did. Node is set for NodeAdded and
// NodeSelected, Edge for EdgeAdded.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Node *core.Node  `json:"node,omitempty"`
	Edge *core.Edge  `json:"edge,omitempty"`
}

// Store is the subset of *core.Graph the controller mutates.
type Store interface {
	AddNode(x, y float64) core.Node
	AddEdge(a, b int, w int64) (core.Edge, error)
	NodeAt(x, y float64) (core.Node, bool)
}

// Controller is the mode state machine bound to one Store.
type Controller struct {
	store   Store
	mode    Mode
	weight  int64
	pending []int // selected node IDs, capacity 2
}

// New returns a Controller in Idle with DefaultWeight.
func New(store Store) *Controller {
	return &Controller{
		store:   store,
		mode:    Idle,
		weight:  DefaultWeight,
		pending: make([]int, 0, 2),
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Weight returns the weight used for the next edge.
func (c *Controller) Weight() int64 { return c.weight }

// Pending returns a copy of the selected node IDs awaiting a partner.
func (c *Controller) Pending() []int { return append([]int(nil), c.pending...) }

// SetMode switches to m unconditionally and clears the pending selection.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	c.pending = c.pending[:0]
}

// SetWeight sets the edge weight; values <= 0 fall back to DefaultWeight.
func (c *Controller) SetWeight(w int64) {
	if w <= 0 {
		w = DefaultWeight
	}
	c.weight = w
}

// Reset clears the pending selection and returns to Idle.
func (c *Controller) Reset() {
	c.mode = Idle
	c.pending = c.pending[:0]
}

// Click interprets a pointer click at (x,y) according to the current mode.
func (c *Controller) Click(x, y float64) (Outcome, error) {
	switch c.mode {
	case AddingNode:
		n := c.store.AddNode(x, y)
		return Outcome{Kind: NodeAdded, Node: &n}, nil

	case AddingEdge:
		n, hit := c.store.NodeAt(x, y)
		if !hit {
			return Outcome{Kind: Ignored}, nil
		}
		c.pending = append(c.pending, n.ID)
		if len(c.pending) < 2 {
			return Outcome{Kind: NodeSelected, Node: &n}, nil
		}

		a, b := c.pending[0], c.pending[1]
		c.pending = c.pending[:0]
		e, err := c.store.AddEdge(a, b, c.weight)
		if err != nil {
			return Outcome{Kind: Ignored}, err
		}

		return Outcome{Kind: EdgeAdded, Edge: &e}, nil

	default:
		return Outcome{Kind: Ignored}, nil
	}
}

// ParseWeight coerces raw weight input to a positive integer.
//
// The leading run of an optional sign and decimal digits is parsed after
// trimming whitespace ("12abc" → 12, " 7 " → 7). Empty, unparsable, zero
// and negative input yield DefaultWeight.
func ParseWeight(raw string) int64 {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultWeight
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || v <= 0 {
		return DefaultWeight
	}

	return v
}
