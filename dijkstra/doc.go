// Package dijkstra provides the Shortest-Path Engine: an incremental,
// single-step Dijkstra over a core.Graph, plus an instant heap-based solver
// that computes the same answer in one call.
//
// Overview:
//
//   - Engine owns one run's state: distance and predecessor tables, the
//     visited set (in finalisation order), the unvisited set (in node insertion
//     order) and the current frontier node.
//   - Initialize(start) seeds a run; Step() finalises exactly one node and
//     relaxes its neighbours; Run() steps to completion.
//   - Result() reports, for every node, its distance and the path from start,
//     or that it is unreachable.
//
// Phases:
//
//	NotRunning ──Initialize──▶ Running ──Step (last node finalised)──▶ Done
//	     ▲                                                           │
//	     └───────────────────────── Initialize ◀─────────────────────┘
//
// Tie-break rule:
//
//	Among unvisited nodes with equal minimal distance, the node that comes first
//	in the run's node order wins. That order is node insertion order, which is
//	ascending ID because IDs are never reused. The rule applies to +∞ ties too,
//	so unreachable nodes are finalised in ascending ID order.
//
// Relaxation:
//
//   - alt = distance[m] + w, saturated at Infinity; update only when alt < distance[nb].
//   - Neighbours already visited are skipped; so are nodes created after Initialize.
//   - A node finalised at +∞ relaxes nothing.
//   - Edges with weight >= InfEdgeThreshold are impassable.
//
// Options:
//
//	WithStopAtUnreachable()  – finish as soon as only +∞ nodes remain.
//	WithInfEdgeThreshold(t)  – treat edges with weight >= t as walls.
//	WithMaxDistance(x)       – do not record distances greater than x.
//	WithOnFinalize(fn)       – observe each finalised node.
//	WithOnRelax(fn)          – observe each successful relaxation.
//
// Errors (sentinel):
//
//	ErrNilGraph        – a nil View was supplied.
//	ErrInvalidStart    – the start node does not exist.
//	ErrNegativeWeight  – an edge with negative weight was found by the O(E) pre-scan.
//	ErrNotRunning      – Step called outside the Running phase.
//	ErrNotDone         – Result requested before the run finished.
//
// Complexity:
//
//	Engine:  O(V) per step for minimum selection, O(V² + E) for a full run.
//	Compute: O((V + E) log V) with a lazy decrease-key min-heap.
//
// An Engine is not safe for concurrent use; callers serialise access
// (the session package does so with its own mutex).
package dijkstra
