// SPDX-License-Identifier: MIT
//
// File: compute_test.go
// Role: tests for instant solver results and agreement with the stepping engine.

package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/dijkstra"
)

func TestCompute_Triangle(t *testing.T) {
	res, err := dijkstra.Compute(triangle(t), 0)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{0: 0, 1: 4, 2: 5}, res.Distances())
	p, ok := res.PathTo(2)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, p)
}

func TestCompute_Validation(t *testing.T) {
	_, err := dijkstra.Compute(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Compute(triangle(t), 3)
	require.ErrorIs(t, err, dijkstra.ErrInvalidStart)

	_, err = dijkstra.Compute(negativeView{triangle(t)}, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestCompute_MatchesEngine cross-checks the heap solver against the
// step engine on random graphs, including paths chosen on equal costs.
func TestCompute_MatchesEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		n := 1 + rng.Intn(15)
		g := buildGraph(t, n)
		for i := 0; i < n*3; i++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a != b {
				_, _ = g.AddEdge(a, b, int64(rng.Intn(6)))
			}
		}
		start := rng.Intn(n)

		e := dijkstra.NewEngine(g)
		require.NoError(t, e.Initialize(start))
		want, err := e.Run()
		require.NoError(t, err)

		got, err := dijkstra.Compute(g, start)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round %d: Compute differs from Engine (-engine +compute):\n%s", round, diff)
		}
	}
}
