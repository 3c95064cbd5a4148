// SPDX-License-Identifier: MIT
//
// File: concurrency_test.go
// Role: tests for concurrent readers and writers under -race.

// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
)

// TestConcurrentAddNode ensures concurrent AddNode calls hand out unique, dense IDs.
func TestConcurrentAddNode(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			g.AddNode(float64(i), 0)
		}(i)
	}
	wg.Wait()

	ids := g.NodeIDs()
	require.Len(t, ids, num)
	for i, id := range ids {
		require.Equal(t, i, id)
	}
}

// TestConcurrentAddEdgeAndReads mixes edge insertion with readers.
func TestConcurrentAddEdgeAndReads(t *testing.T) {
	g := core.NewGraph()
	const num = 100
	for i := 0; i <= num; i++ {
		g.AddNode(float64(i), 0)
	}

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(0, id, int64(id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors(0)
			_ = g.Snapshot()
		}()
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}
