// Package core provides the Graph Store: a thread-safe, in-memory, weighted,
// undirected graph whose nodes carry a planar position on the editing canvas.
//
// The Graph G = (V,E) keeps a deliberately small contract:
//
//   - Nodes are created only by AddNode and receive monotonically assigned
//     integer IDs: max(existing)+1, or 0 for an empty graph.
//   - Edges connect two distinct nodes; at most one edge may exist per
//     unordered pair {u,v}. A second AddEdge in either orientation fails
//     with ErrDuplicateEdge and leaves the first edge untouched.
//   - Adjacency is symmetric. Edge.From/Edge.To keep the orientation in which
//     the edge was drawn, which only the rendering layer cares about.
//   - Nothing is ever removed individually. Reset clears nodes and edges at
//     once and is the only deletion path.
//
// Ordering guarantees:
//
//	Nodes(), NodeIDs()  – insertion order (equal to ascending ID).
//	Edges()             – insertion order.
//	Neighbors(id)       – edge insertion order of the incident edges.
//	NodeAt(x, y)        – first node, by insertion order, whose disc contains the point.
//
// Change notification:
//
//	WithOnChange(fn) registers a hook called after every successful mutation
//	(NodeAdded, EdgeAdded, Cleared). Hooks run after the internal lock has been
//	released, so they may read the graph.
//
// Errors:
//
//	ErrNodeNotFound    – an endpoint or queried node does not exist.
//	ErrDuplicateEdge   – an edge already joins the unordered pair.
//	ErrLoopNotAllowed  – both endpoints are the same node.
//	ErrNegativeWeight  – weights must be non-negative.
//
// Complexity:
//
//	AddNode, AddEdge, EdgeBetween, HasNode – O(1) amortized.
//	Neighbors(id)                          – O(deg(id)).
//	NodeAt                                 – O(V).
package core
