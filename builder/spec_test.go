// SPDX-License-Identifier: MIT
//
// File: spec_test.go
// Role: Spec resolution, weight ranges and size caps.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/builder"
)

func TestSpec_Resolve(t *testing.T) {
	w := int64(4)
	spec := builder.Spec{Name: "cycle", N: 5, Center: &builder.Point{X: 100, Y: 100}, Spacing: 50, Weight: &w}
	con, opts, err := spec.Resolve()
	require.NoError(t, err)

	g := build(t, opts, con)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 5, g.EdgeCount())
	for _, e := range g.Edges() {
		require.Equal(t, int64(4), e.Weight)
	}
	for _, n := range g.Nodes() {
		require.InDelta(t, 100, n.X, 100)
		require.InDelta(t, 100, n.Y, 100)
	}
}

func TestSpec_UniformWeights(t *testing.T) {
	spec := builder.Spec{Name: "complete", N: 4, MinWeight: 2, MaxWeight: 6, Seed: 3}
	con, opts, err := spec.Resolve()
	require.NoError(t, err)

	g := build(t, opts, con)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(2))
		require.LessOrEqual(t, e.Weight, int64(6))
	}
}

func TestSpec_Invalid(t *testing.T) {
	neg := int64(-2)
	cases := map[string]builder.Spec{
		"spacing": {Name: "path", N: 3, Spacing: -1},
		"weight":  {Name: "path", N: 3, Weight: &neg},
		"range":   {Name: "path", N: 3, MinWeight: 5, MaxWeight: 2},
	}
	for name, spec := range cases {
		_, _, err := spec.Resolve()
		require.ErrorIs(t, err, builder.ErrInvalidSpec, name)
	}

	_, _, err := builder.Spec{Name: "blob", N: 3}.Resolve()
	require.ErrorIs(t, err, builder.ErrUnknownPreset)
}

func TestSpec_UniformWeightsWithoutSeed(t *testing.T) {
	spec := builder.Spec{Name: "complete", N: 8, MinWeight: 1, MaxWeight: 9}
	con, opts, err := spec.Resolve()
	require.NoError(t, err)

	g := build(t, opts, con)
	require.Equal(t, 28, g.EdgeCount())
	seen := make(map[int64]struct{})
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(1))
		require.LessOrEqual(t, e.Weight, int64(9))
		seen[e.Weight] = struct{}{}
	}
	require.Greater(t, len(seen), 1, "28 draws from [1,9] should not all coincide")
}

func TestSpec_TooLarge(t *testing.T) {
	cases := map[string]builder.Spec{
		"path":       {Name: "path", N: builder.MaxPresetNodes + 1},
		"grid rows":  {Name: "grid", N: builder.MaxPresetNodes + 1, M: 1},
		"grid area":  {Name: "grid", N: 64, M: 64},
		"grid cols":  {Name: "Grid", N: 1, M: builder.MaxPresetNodes + 1},
		"complete":   {Name: "complete", N: 300},
		"huge cycle": {Name: "cycle", N: 1 << 30},
	}
	for name, spec := range cases {
		_, _, err := spec.Resolve()
		require.ErrorIs(t, err, builder.ErrInvalidSpec, name)
	}

	_, _, err := builder.Spec{Name: "grid", N: 32, M: 32}.Resolve()
	require.NoError(t, err)
	_, _, err = builder.Spec{Name: "complete", N: 256}.Resolve()
	require.NoError(t, err)
}
