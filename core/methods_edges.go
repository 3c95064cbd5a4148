// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge insertion, lookup and neighborhood queries.
// Determinism:
//   - Edges() and Neighbors() follow edge insertion order.

package core

import "fmt"

// AddEdge connects a and b with the given weight and returns the stored edge.
//
// Validation order:
//  1. a == b                 → ErrLoopNotAllowed
//  2. weight < 0             → ErrNegativeWeight
//  3. a or b missing         → ErrNodeNotFound
//  4. {a,b} already joined   → ErrDuplicateEdge (existing weight is kept)
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int, weight int64) (Edge, error) {
	// 1) Argument checks that need no lock.
	if a == b {
		return Edge{}, fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if weight < 0 {
		return Edge{}, fmt.Errorf("AddEdge(%d,%d,%d): %w", a, b, weight, ErrNegativeWeight)
	}

	// 2) Endpoint existence and duplicate pair, under the write lock.
	g.mu.Lock()
	if _, ok := g.index[a]; !ok {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("AddEdge: node %d: %w", a, ErrNodeNotFound)
	}
	if _, ok := g.index[b]; !ok {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("AddEdge: node %d: %w", b, ErrNodeNotFound)
	}
	key := keyOf(a, b)
	if _, dup := g.pairs[key]; dup {
		g.mu.Unlock()
		return Edge{}, fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrDuplicateEdge)
	}

	// 3) Append and index the edge at both endpoints.
	e := Edge{From: a, To: b, Weight: weight}
	pos := len(g.edges)
	g.edges = append(g.edges, e)
	g.pairs[key] = pos
	g.adjacency[a] = append(g.adjacency[a], pos)
	g.adjacency[b] = append(g.adjacency[b], pos)
	g.mu.Unlock()

	// 4) Hooks run outside the lock.
	g.notify(Change{Kind: EdgeAdded, Edge: &e})

	return e, nil
}

// EdgeBetween returns the edge joining a and b in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(a, b int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.pairs[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}

	return g.edges[pos], true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the nodes adjacent to id, one per incident edge,
// in edge insertion order.
// Returns ErrNodeNotFound if id is unknown.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	incident := g.adjacency[id]
	out := make([]Node, 0, len(incident))
	var pos, other int
	for _, pos = range incident {
		other, _ = g.edges[pos].Other(id)
		out = append(out, g.nodes[g.index[other]])
	}

	return out, nil
}

// IncidentEdges returns the edges touching id in insertion order.
// Returns ErrNodeNotFound if id is unknown.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("IncidentEdges(%d): %w", id, ErrNodeNotFound)
	}

	incident := g.adjacency[id]
	out := make([]Edge, len(incident))
	var i int
	for i = range incident {
		out[i] = g.edges[incident[i]]
	}

	return out, nil
}
