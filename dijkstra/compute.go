// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: instant solver over the same View, using a lazy decrease-key min-heap.

package dijkstra

import (
	"container/heap"
	"fmt"
)

// Compute runs Dijkstra to completion from start in one call and returns the
// same Result an Engine would produce for the same graph and options.
//
// Heap entries are ordered by (distance, insertion index), which reproduces
// the engine's tie-break rule. Hooks are honoured.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key may hold up to E stale entries).
func Compute(g View, start int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: node %d", ErrInvalidStart, start)
	}
	if err := scanNegative(g); err != nil {
		return nil, err
	}

	// 3) Initialise tables.
	order := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, len(order)),
		prev:    make(map[int]int, len(order)),
		rank:    make(map[int]int, len(order)),
		visited: make(map[int]bool, len(order)),
		pq:      make(nodePQ, 0, len(order)),
	}
	for i, id := range order {
		r.dist[id] = Infinity
		r.prev[id] = NoNode
		r.rank[id] = i
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0, rank: r.rank[start]})

	// 4) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return buildResult(start, order, r.dist, r.prev), nil
}

// runner holds the mutable state of one Compute call.
type runner struct {
	g       View
	options Options
	dist    map[int]int64 // node ID → best known distance
	prev    map[int]int   // node ID → predecessor on the shortest path
	rank    map[int]int   // node ID → insertion index, the tie-breaker
	visited map[int]bool  // finalised nodes
	pq      nodePQ
}

// process pops the closest unvisited node until the heap drains.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(item.id, item.dist)
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes every neighbour of u whose distance strictly improves.
func (r *runner) relax(u int) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	var v int
	var w, alt int64
	var ok bool
	for i := range nbs {
		v = nbs[i].ID
		if r.visited[v] {
			continue
		}
		if _, ok = r.rank[v]; !ok {
			continue
		}
		w, ok = lookupWeight(r.g, u, v)
		if !ok || w >= r.options.InfEdgeThreshold {
			continue
		}
		alt = addSat(du, w)
		if alt > r.options.MaxDistance || alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		if r.options.OnRelax != nil {
			r.options.OnRelax(u, v, alt)
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: alt, rank: r.rank[v]})
	}

	return nil
}

// nodeItem is a heap entry.
type nodeItem struct {
	id   int
	dist int64
	rank int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, rank).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].rank < pq[j].rank
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
