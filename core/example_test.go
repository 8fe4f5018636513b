package core_test

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
)

// ExampleGraph_InsertRandomEdges fills a small graph and reports progress.
func ExampleGraph_InsertRandomEdges() {
	// 1) Five points, deterministic seed, locked commits (default).
	g, err := core.NewGraph(5, core.WithSeed(42), core.WithInitParallelism(4))
	if err != nil {
		fmt.Println(err)
		return
	}

	// 2) Ask for far more edges than exist; the request is clamped to 10.
	g.InsertRandomEdges(200000, core.WithInsertPolicy(core.Locked))

	fmt.Println("max:", g.MaxEdges())
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// max: 10
	// edges: 10
}

// ExampleHooks subscribes plain functions to the insertion lifecycle.
func ExampleHooks() {
	hooks := core.Hooks{
		OnInsertBegin: func(e core.InsertEvent) { fmt.Println("begin, requested", e.Requested) },
		OnInsertEnd:   func(e core.InsertEvent) { fmt.Println("end, inserted", e.Inserted) },
	}
	g, _ := core.NewGraph(4, core.WithEdgeParallelism(1), core.WithHooks(hooks))
	g.InsertRandomEdges(3)

	// Output:
	// begin, requested 3
	// end, inserted 3
}
