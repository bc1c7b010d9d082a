package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// ExampleGraph demonstrates building, freezing and querying a graph.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.SetEdge(0, 1, 3)
	_ = g.SetEdge(1, 2, 5)
	g.Freeze()

	w, _ := g.Cost(1, 0)
	fmt.Println("nodes:", g.Nodes())
	fmt.Println("cost(1,0):", w)
	fmt.Println("frozen write:", errors.Is(g.SetEdge(0, 2, 1), core.ErrFrozen))

	// Output:
	// nodes: [0 1 2]
	// cost(1,0): 3
	// frozen write: true
}

// ExampleFromAdjacency shows the mapping form accepted from outside suppliers.
func ExampleFromAdjacency() {
	g, err := core.FromAdjacency(map[core.NodeID]map[core.NodeID]int64{
		0: {1: 2},
		1: {0: 2},
		2: {},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Edges(), g.Stats().IsolatedNodes)
	// Output: [{0 1 2}] 1
}
