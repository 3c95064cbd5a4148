// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: whole-graph operations (Reset, Snapshot).

package core

// Snapshot is an immutable copy of the graph contents.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Reset removes all nodes and edges; the next AddNode returns ID 0.
// Reset on an empty graph still notifies hooks with Cleared.
// Complexity: O(1) plus garbage collection of the old storage.
func (g *Graph) Reset() {
	g.mu.Lock()
	g.clearLocked()
	g.mu.Unlock()

	g.notify(Change{Kind: Cleared})
}

// Snapshot returns a consistent copy of nodes and edges taken under one read lock.
// Complexity: O(V+E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Nodes: make([]Node, len(g.nodes)),
		Edges: make([]Edge, len(g.edges)),
	}
	copy(s.Nodes, g.nodes)
	copy(s.Edges, g.edges)

	return s
}
