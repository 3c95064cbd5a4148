// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in ID assignment, duplicate-edge rejection and ordering guarantees.
//   - Validate that hooks observe every successful mutation and nothing else.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
)

// TestGraph_AddNode_AssignsSequentialIDs checks that k nodes get IDs 0..k-1.
func TestGraph_AddNode_AssignsSequentialIDs(t *testing.T) {
	g := core.NewGraph()
	const k = 7
	for i := 0; i < k; i++ {
		n := g.AddNode(float64(i*10), 5)
		require.Equal(t, i, n.ID)
		require.Equal(t, core.DefaultNodeRadius, n.Radius)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, g.NodeIDs())
	require.Equal(t, k, g.NodeCount())
}

func TestGraph_AddEdge_RejectsDuplicateEitherOrientation(t *testing.T) {
	g := buildNodes(t, 2)

	e, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	require.Equal(t, core.Edge{From: 0, To: 1, Weight: 4}, e)

	_, err = g.AddEdge(0, 1, 9)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	_, err = g.AddEdge(1, 0, 9)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	require.Equal(t, 1, g.EdgeCount())
	got, ok := g.EdgeBetween(1, 0)
	require.True(t, ok)
	require.Equal(t, int64(4), got.Weight, "first weight must survive a duplicate attempt")
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := buildNodes(t, 2)

	cases := []struct {
		name string
		a, b int
		w    int64
		want error
	}{
		{name: "loop", a: 1, b: 1, w: 1, want: core.ErrLoopNotAllowed},
		{name: "negative", a: 0, b: 1, w: -1, want: core.ErrNegativeWeight},
		{name: "missing-from", a: 5, b: 1, w: 1, want: core.ErrNodeNotFound},
		{name: "missing-to", a: 0, b: 5, w: 1, want: core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.a, tc.b, tc.w)
			require.ErrorIs(t, err, tc.want)
		})
	}
	require.Zero(t, g.EdgeCount())
}

func TestGraph_AddEdge_ZeroWeightAllowed(t *testing.T) {
	g := buildNodes(t, 2)
	_, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)
}

// TestGraph_Neighbors_Symmetric checks adjacency symmetry and edge insertion order.
func TestGraph_Neighbors_Symmetric(t *testing.T) {
	g := buildNodes(t, 4)
	mustEdge(t, g, 2, 0, 1)
	mustEdge(t, g, 0, 3, 1)
	mustEdge(t, g, 1, 0, 1)

	require.Equal(t, []int{2, 3, 1}, neighborIDs(t, g, 0))
	require.Equal(t, []int{0}, neighborIDs(t, g, 1))
	require.Equal(t, []int{0}, neighborIDs(t, g, 2))
	require.Equal(t, []int{0}, neighborIDs(t, g, 3))

	_, err := g.Neighbors(42)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	inc, err := g.IncidentEdges(0)
	require.NoError(t, err)
	require.Len(t, inc, 3)
	require.Equal(t, core.Edge{From: 2, To: 0, Weight: 1}, inc[0])
}

func TestGraph_Neighbors_IsolatedNode(t *testing.T) {
	g := buildNodes(t, 1)
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Empty(t, nbs)
}

func TestGraph_Reset_RestartsIDs(t *testing.T) {
	g := buildNodes(t, 3)
	mustEdge(t, g, 0, 1, 2)

	g.Reset()
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.False(t, g.HasNode(0))
	_, ok := g.EdgeBetween(0, 1)
	require.False(t, ok)

	n := g.AddNode(1, 1)
	require.Equal(t, 0, n.ID)

	// Reset is idempotent.
	g.Reset()
	g.Reset()
	require.Zero(t, g.NodeCount())
}

func TestGraph_NodeAt_FirstByInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithNodeRadius(10))
	g.AddNode(0, 0)
	g.AddNode(5, 0) // overlaps node 0

	n, ok := g.NodeAt(4, 0)
	require.True(t, ok)
	require.Equal(t, 0, n.ID)

	n, ok = g.NodeAt(14, 0)
	require.True(t, ok)
	require.Equal(t, 1, n.ID)

	_, ok = g.NodeAt(100, 100)
	require.False(t, ok)

	// Boundary is inclusive.
	n, ok = g.NodeAt(0, -10)
	require.True(t, ok)
	require.Equal(t, 0, n.ID)
}

func TestGraph_Snapshot_IsCopy(t *testing.T) {
	g := buildNodes(t, 2)
	mustEdge(t, g, 0, 1, 3)

	s := g.Snapshot()
	s.Nodes[0].X = 999
	s.Edges[0].Weight = 999

	n, err := g.Node(0)
	require.NoError(t, err)
	require.NotEqual(t, 999.0, n.X)
	require.Equal(t, int64(3), g.Edges()[0].Weight)
}

func TestGraph_Node_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Node(0)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_OnChange_ObservesMutations(t *testing.T) {
	var kinds []core.ChangeKind
	g := core.NewGraph(core.WithOnChange(func(c core.Change) {
		kinds = append(kinds, c.Kind)
	}))

	g.AddNode(0, 0)
	g.AddNode(50, 0)
	mustEdge(t, g, 0, 1, 1)
	_, _ = g.AddEdge(1, 0, 1) // rejected: no notification
	g.Reset()

	require.Equal(t, []core.ChangeKind{core.NodeAdded, core.NodeAdded, core.EdgeAdded, core.Cleared}, kinds)
}

func TestGraph_OnChange_HookMayReadGraph(t *testing.T) {
	var g *core.Graph
	var seen int
	g = core.NewGraph(core.WithOnChange(func(core.Change) {
		seen = g.NodeCount()
	}))
	g.AddNode(0, 0)
	require.Equal(t, 1, seen)
}

func TestWithNodeRadius_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { core.WithNodeRadius(0) })
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{From: 3, To: 7}
	o, ok := e.Other(3)
	require.True(t, ok)
	require.Equal(t, 7, o)
	_, ok = e.Other(1)
	require.False(t, ok)
	require.True(t, e.Joins(7, 3))
}
