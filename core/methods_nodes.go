// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: node creation, lookup and canvas hit-testing.

package core

// AddNode creates a node at (x,y) and returns it.
// The new ID is max(existing)+1, or 0 when the graph is empty.
// AddNode never fails.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) Node {
	g.mu.Lock()
	n := Node{ID: g.nextID, X: x, Y: y, Radius: g.radius}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.nextID++
	g.mu.Unlock()

	g.notify(Change{Kind: NodeAdded, Node: &n})

	return n
}

// Node returns the node with the given ID.
// Returns ErrNodeNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[pos], nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	_, ok := g.index[id]
	g.mu.RUnlock()

	return ok
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.nodes))
	var i int
	for i = range g.nodes {
		ids[i] = g.nodes[i].ID
	}

	return ids
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NodeAt returns the first node, in insertion order, whose disc contains (x,y).
// The second result is false when the point hits empty canvas.
// Complexity: O(V).
func (g *Graph) NodeAt(x, y float64) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var i int
	for i = range g.nodes {
		if g.nodes[i].Contains(x, y) {
			return g.nodes[i], true
		}
	}

	return Node{}, false
}
