// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Result type, path reconstruction and the textual report.

package dijkstra

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is the outcome for one node.
type Entry struct {
	Node      int   `json:"node"`
	Distance  int64 `json:"-"`
	Reachable bool  `json:"reachable"`
	Path      []int `json:"path,omitempty"`
}

// MarshalJSON renders Distance as null for unreachable nodes.
func (en Entry) MarshalJSON() ([]byte, error) {
	type alias Entry
	out := struct {
		alias
		Distance *int64 `json:"distance"`
	}{alias: alias(en)}
	if en.Reachable {
		d := en.Distance
		out.Distance = &d
	}

	return json.Marshal(out)
}

// Result is the final report of a run: one Entry per node in insertion order.
type Result struct {
	Start   int     `json:"start"`
	Entries []Entry `json:"entries"`
}

// buildResult reconstructs every path by following predecessors back from each node.
func buildResult(start int, order []int, dist map[int]int64, prev map[int]int) *Result {
	r := &Result{Start: start, Entries: make([]Entry, 0, len(order))}
	var id int
	for _, id = range order {
		en := Entry{Node: id, Distance: dist[id]}
		if en.Distance != Infinity {
			en.Reachable = true
			en.Path = walkBack(id, prev, len(order))
		}
		r.Entries = append(r.Entries, en)
	}

	return r
}

// walkBack follows prev from id to NoNode and returns the path start→id.
// limit bounds the walk to the node count.
func walkBack(id int, prev map[int]int, limit int) []int {
	var rev []int
	for cur := id; cur != NoNode && len(rev) <= limit; cur = prev[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Entry returns the entry for id.
func (r *Result) Entry(id int) (Entry, bool) {
	for i := range r.Entries {
		if r.Entries[i].Node == id {
			return r.Entries[i], true
		}
	}

	return Entry{}, false
}

// PathTo returns the path from Start to id, or false if id is unknown or unreachable.
func (r *Result) PathTo(id int) ([]int, bool) {
	en, ok := r.Entry(id)
	if !ok || !en.Reachable {
		return nil, false
	}

	return append([]int(nil), en.Path...), true
}

// Distances returns node ID → distance, Infinity for unreachable nodes.
func (r *Result) Distances() map[int]int64 {
	out := make(map[int]int64, len(r.Entries))
	for i := range r.Entries {
		out[r.Entries[i].Node] = r.Entries[i].Distance
	}

	return out
}

// Unreachable returns the IDs of unreachable nodes in insertion order.
func (r *Result) Unreachable() []int {
	var out []int
	for i := range r.Entries {
		if !r.Entries[i].Reachable {
			out = append(out, r.Entries[i].Node)
		}
	}

	return out
}

// FormatPath joins a path with arrows: "0 → 1 → 2".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " → ")
}

// WriteText writes the human-readable report:
//
//	Shortest path results from node S:
//
//	node N: distance=D, path=S → … → N
//	node M: unreachable
func (r *Result) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Shortest path results from node %d:\n\n", r.Start); err != nil {
		return err
	}
	var err error
	for i := range r.Entries {
		en := r.Entries[i]
		if !en.Reachable {
			_, err = fmt.Fprintf(w, "node %d: unreachable\n", en.Node)
		} else {
			_, err = fmt.Fprintf(w, "node %d: distance=%d, path=%s\n", en.Node, en.Distance, FormatPath(en.Path))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// String returns the textual report.
func (r *Result) String() string {
	var b strings.Builder
	_ = r.WriteText(&b)

	return b.String()
}
