// SPDX-License-Identifier: MIT
// Package builder_test verifies node/edge counts, edge order and layout of every preset.

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestPresets_Counts(t *testing.T) {
	cases := []struct {
		name         string
		con          builder.Constructor
		nodes, edges int
	}{
		{"path5", builder.Path(5), 5, 4},
		{"cycle6", builder.Cycle(6), 6, 6},
		{"star5", builder.Star(5), 5, 4},
		{"wheel6", builder.Wheel(6), 6, 10},
		{"grid3x4", builder.Grid(3, 4), 12, 17},
		{"grid1x1", builder.Grid(1, 1), 1, 0},
		{"complete5", builder.Complete(5), 5, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.con)
			require.Equal(t, tc.nodes, g.NodeCount())
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestPresets_TooSmall(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1),
		builder.Wheel(3), builder.Grid(0, 3), builder.Complete(0),
	} {
		g := core.NewGraph()
		err := builder.Apply(g, nil, con)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
		require.Zero(t, g.NodeCount(), "validation happens before any mutation")
	}
}

func TestApply_NilConstructor(t *testing.T) {
	err := builder.Apply(core.NewGraph(), nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestApply_ComposesDisjointComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Path(3), builder.Star(4)))
	require.Equal(t, 7, g.NodeCount())

	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5, 6}, res.Unreachable())
}

func TestStar_HubFirst(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithCenter(100, 200)}, builder.Star(4))
	hub, err := g.Node(0)
	require.NoError(t, err)
	require.Equal(t, 100.0, hub.X)
	require.Equal(t, 200.0, hub.Y)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 3)
}

func TestWheel_HubLast(t *testing.T) {
	g := build(t, nil, builder.Wheel(5))
	nbs, err := g.Neighbors(4)
	require.NoError(t, err)
	require.Len(t, nbs, 4)
}

func TestCycle_ClosingEdge(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	_, ok := g.EdgeBetween(3, 0)
	require.True(t, ok)
}

func TestPath_Layout(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithCenter(0, 0), builder.WithSpacing(10)}, builder.Path(3))
	xs := make([]float64, 0, 3)
	for _, n := range g.Nodes() {
		xs = append(xs, n.X)
		require.Zero(t, n.Y)
	}
	require.Equal(t, []float64{-10, 0, 10}, xs)
}

func TestRing_NodesDoNotOverlap(t *testing.T) {
	g := build(t, nil, builder.Complete(8))
	nodes := g.Nodes()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			d := math.Hypot(nodes[i].X-nodes[j].X, nodes[i].Y-nodes[j].Y)
			require.Greater(t, d, 2*core.DefaultNodeRadius, "nodes %d and %d overlap", i, j)
		}
	}
}

func TestGrid_ShortestPathIsManhattan(t *testing.T) {
	g := build(t, nil, builder.Grid(3, 3))
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Distances()[8])
}

func TestWeights_SeededDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 9)}
	a := build(t, opts, builder.Complete(6))
	b := build(t, []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 9)}, builder.Complete(6))
	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(1))
		require.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestWeights_Constant(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Cycle(3))
	for _, e := range g.Edges() {
		require.Equal(t, int64(7), e.Weight)
	}
}

func TestWeightFns(t *testing.T) {
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))
	require.Equal(t, int64(5), builder.UniformWeightFn(5, 5)(rand.New(rand.NewSource(1))))
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(4, 2) })
	require.Panics(t, func() { builder.WithSpacing(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestPreset_Lookup(t *testing.T) {
	for _, name := range builder.PresetNames() {
		con, err := builder.Preset(name, 4, 2)
		require.NoError(t, err, name)
		require.NoError(t, builder.Apply(core.NewGraph(), nil, con), name)
	}
	_, err := builder.Preset("hexagram", 4, 0)
	require.ErrorIs(t, err, builder.ErrUnknownPreset)
}
