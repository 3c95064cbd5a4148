package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
)

// ExampleGraph builds a triangle and lists the neighbors of node 0.
func ExampleGraph() {
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(100, 0)
	c := g.AddNode(50, 80)

	_, _ = g.AddEdge(a.ID, b.ID, 4)
	_, _ = g.AddEdge(b.ID, c.ID, 1)
	_, _ = g.AddEdge(a.ID, c.ID, 10)

	nbs, _ := g.Neighbors(a.ID)
	for _, n := range nbs {
		e, _ := g.EdgeBetween(a.ID, n.ID)
		fmt.Printf("%d-%d w=%d\n", a.ID, n.ID, e.Weight)
	}

	_, err := g.AddEdge(c.ID, b.ID, 7)
	fmt.Println(err)
	// Output:
	// 0-1 w=4
	// 0-2 w=10
	// AddEdge(2,1): core: edge already exists
}

// ExampleGraph_NodeAt shows canvas hit-testing.
func ExampleGraph_NodeAt() {
	g := core.NewGraph(core.WithNodeRadius(20))
	g.AddNode(100, 100)

	n, ok := g.NodeAt(110, 105)
	fmt.Println(n.ID, ok)
	_, ok = g.NodeAt(300, 300)
	fmt.Println(ok)
	// Output:
	// 0 true
	// false
}
