package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazesolver/core"
)

// ExampleGraph demonstrates construction, edge insertion, and neighbor queries.
func ExampleGraph() {
	// 1) A triangle 0–1–2 plus an isolated vertex 3:
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)

	// 2) Neighbors come back in insertion order:
	n0, _ := g.Neighbors(0)
	n3, _ := g.Neighbors(3)
	fmt.Println("N(0):", n0)
	fmt.Println("N(3):", n3)
	fmt.Println("edges:", g.EdgeCount())

	// 3) Out-of-range access is an error, never a panic:
	err := g.AddEdge(0, 4)
	fmt.Println(errors.Is(err, core.ErrOutOfRange))

	// Output:
	// N(0): [1 2]
	// N(3): []
	// edges: 3
	// true
}

// ExampleResult contrasts the single-vertex path with the absence of a path.
func ExampleResult() {
	fmt.Println(core.Found([]int{0, 3, 4}))
	fmt.Println(core.Found([]int{7}))
	fmt.Println(core.NotFound())

	// Output:
	// [0 3 4]
	// [7]
	// no path found
}
