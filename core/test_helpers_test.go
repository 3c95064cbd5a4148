// SPDX-License-Identifier: MIT
// Package core_test contains small fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
)

// buildNodes returns a graph holding n nodes laid out on a horizontal line.
func buildNodes(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(float64(i)*100, 0)
	}

	return g
}

// mustEdge adds a→b and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, a, b int, w int64) {
	t.Helper()
	_, err := g.AddEdge(a, b, w)
	require.NoError(t, err)
}

// neighborIDs projects Neighbors(id) to IDs.
func neighborIDs(t *testing.T, g *core.Graph, id int) []int {
	t.Helper()
	nbs, err := g.Neighbors(id)
	require.NoError(t, err)
	ids := make([]int, len(nbs))
	for i, n := range nbs {
		ids[i] = n.ID
	}

	return ids
}
