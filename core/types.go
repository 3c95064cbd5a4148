// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Change and Graph declarations, sentinel errors, options, NewGraph.
// Concurrency:
//   - A single sync.RWMutex guards nodes, edges and the adjacency index.
//   - Change hooks are invoked outside the lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for Graph Store operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates an edge already joins the unordered pair {a,b}.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates an edge was requested from a node to itself.
	ErrLoopNotAllowed = errors.New("core: edge endpoints must be distinct")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// DefaultNodeRadius is the hit-test radius of a node on the canvas.
const DefaultNodeRadius = 25.0

// Node is a vertex placed on the canvas.
type Node struct {
	// ID is unique within the Graph and never reused until Reset.
	ID int `json:"id"`

	// X and Y are canvas coordinates; only rendering and hit-testing read them.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Radius is the hit region used by NodeAt.
	Radius float64 `json:"radius"`
}

// Contains reports whether the point (x,y) lies inside the node's disc.
func (n Node) Contains(x, y float64) bool {
	dx := n.X - x
	dy := n.Y - y

	return dx*dx+dy*dy <= n.Radius*n.Radius
}

// Edge is an undirected, weighted connection between two distinct nodes.
type Edge struct {
	// From and To record the order in which the endpoints were picked.
	From int `json:"from"`
	To   int `json:"to"`

	// Weight is the non-negative traversal cost.
	Weight int64 `json:"weight"`
}

// Other returns the endpoint opposite to id, and false if id is not an endpoint.
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return 0, false
	}
}

// Joins reports whether the edge connects a and b in either orientation.
func (e Edge) Joins(a, b int) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// ChangeKind classifies a Graph mutation.
type ChangeKind int

const (
	// NodeAdded is emitted after AddNode.
	NodeAdded ChangeKind = iota
	// EdgeAdded is emitted after a successful AddEdge.
	EdgeAdded
	// Cleared is emitted after Reset.
	Cleared
)

// String returns the wire name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case NodeAdded:
		return "node_added"
	case EdgeAdded:
		return "edge_added"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change describes one mutation. Node is set for NodeAdded, Edge for EdgeAdded.
type Change struct {
	Kind ChangeKind
	Node *Node
	Edge *Edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeRadius sets the hit-test radius assigned to new nodes.
// Panics if r <= 0.
func WithNodeRadius(r float64) GraphOption {
	if r <= 0 {
		panic("core: WithNodeRadius(r<=0)")
	}

	return func(g *Graph) { g.radius = r }
}

// WithOnChange registers a hook invoked after every successful mutation.
// Nil hooks are ignored.
func WithOnChange(fn func(Change)) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.hooks = append(g.hooks, fn)
		}
	}
}

// pairKey is the canonical (lo,hi) form of an unordered node pair.
type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is the in-memory Graph Store.
//
// nodes and edges are append-only slices (insertion order); index, pairs and
// adjacency are lookup structures over them, rebuilt only by Reset.
type Graph struct {
	mu sync.RWMutex // guards everything below except hooks

	radius float64        // radius stamped on new nodes
	hooks  []func(Change) // immutable after construction

	nextID    int             // max(existing ID)+1, or 0
	nodes     []Node          // insertion order
	index     map[int]int     // node ID → position in nodes
	edges     []Edge          // insertion order
	pairs     map[pairKey]int // unordered pair → position in edges
	adjacency map[int][]int   // node ID → positions in edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{radius: DefaultNodeRadius}
	g.clearLocked()
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	return g
}

// clearLocked resets storage. Caller holds mu (or owns g exclusively).
func (g *Graph) clearLocked() {
	g.nextID = 0
	g.nodes = nil
	g.index = make(map[int]int)
	g.edges = nil
	g.pairs = make(map[pairKey]int)
	g.adjacency = make(map[int][]int)
}

// notify fans a change out to the registered hooks. Must be called without mu held.
func (g *Graph) notify(c Change) {
	var fn func(Change)
	for _, fn = range g.hooks {
		fn(c)
	}
}
