package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/attrgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Seed nodes and edges at construction time:
	g := core.NewGraph(
		core.WithNodes(1, 2, 3),
		core.WithEdges(core.Edge(1, 2), core.Edge(2, 3), core.Edge(1, 3)),
		core.WithName[int]("triangle"),
	)

	// 2) Inspect nodes and edges:
	fmt.Println(g, "nodes:", g.Nodes(), "edges:", g.EdgeCount())
	fmt.Println("Edge 3-1 exists?", g.HasEdge(3, 1))

	// 3) Remove a node and its edges:
	_ = g.RemoveNode(2)
	nbrs, _ := g.Neighbors(1)
	fmt.Println("After removing 2, neighbors of 1:", nbrs)

	// Output:
	// triangle nodes: [1 2 3] edges: 3
	// Edge 3-1 exists? true
	// After removing 2, neighbors of 1: [3]
}

// ExampleGraph_AddEdge shows attribute merging on an existing edge.
func ExampleGraph_AddEdge() {
	g := core.NewGraph[string]()

	g.AddEdge("A", "B", core.Attrs{"weight": 4})
	g.AddEdge("B", "A", core.Attrs{"color": "red"}) // same edge, merged

	attrs, _ := g.EdgeAttrs("A", "B")
	fmt.Println(g.EdgeCount(), attrs["weight"], attrs["color"])

	// Output:
	// 1 4 red
}

// ExampleGraph_RemoveNode shows how missing nodes are reported.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph[int]()

	err := g.RemoveNode(99)
	fmt.Println(errors.Is(err, core.ErrNodeNotFound), core.IsNotFound(err))
	fmt.Println(err)

	// Output:
	// true true
	// RemoveNode(99): core: node not found
}

// ExampleGraph_All iterates a snapshot of the nodes.
func ExampleGraph_All() {
	g := core.NewGraph(core.WithEdges(core.Edge("x", "y"), core.Edge("y", "z")))

	for id := range g.All() {
		fmt.Print(id, " ")
	}
	fmt.Println()

	// Output:
	// x y z
}
