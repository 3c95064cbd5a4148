// SPDX-License-Identifier: MIT
//
// File: test_helpers_test.go
// Role: tests for shared graph fixtures for the dijkstra tests.

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// edgeSpec is a compact undirected edge literal for fixtures.
type edgeSpec struct {
	a, b int
	w    int64
}

// buildGraph returns a graph with n nodes (IDs 0..n-1) and the given edges.
func buildGraph(t *testing.T, n int, edges ...edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(float64(i)*60, 0)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.a, e.b, e.w)
		require.NoError(t, err)
	}

	return g
}

// triangle is the canonical three-node fixture: 0–1 (4), 1–2 (1), 0–2 (10).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	return buildGraph(t, 3, edgeSpec{0, 1, 4}, edgeSpec{1, 2, 1}, edgeSpec{0, 2, 10})
}

// negativeView wraps a graph and injects a negative edge into Edges().
type negativeView struct{ *core.Graph }

func (v negativeView) Edges() []core.Edge {
	return append(v.Graph.Edges(), core.Edge{From: 0, To: 1, Weight: -3})
}

// runFrom drives a fresh engine over g from start to completion.
func runFrom(t *testing.T, g *core.Graph, start int) (*dijkstra.Result, error) {
	t.Helper()
	e := dijkstra.NewEngine(g)
	if err := e.Initialize(start); err != nil {
		return nil, err
	}

	return e.Run()
}
