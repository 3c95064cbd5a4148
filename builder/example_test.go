package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// ExamplePreset builds a star with weight-3 spokes and solves it from a leaf.
func ExamplePreset() {
	con, err := builder.Preset(builder.PresetStar, 4, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(3)}, con)
	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edges")

	res, _ := dijkstra.Compute(g, 1)
	fmt.Print(res)
	// Output:
	// 4 nodes, 3 edges
	// Shortest path results from node 1:
	//
	// node 0: distance=3, path=1 → 0
	// node 1: distance=0, path=1
	// node 2: distance=6, path=1 → 0 → 2
	// node 3: distance=6, path=1 → 0 → 3
}
