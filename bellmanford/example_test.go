package bellmanford_test

import (
	"fmt"

	"github.com/lucasccalmon/TrabalhoGrafos/bellmanford"
)

// ExampleBellmanFord runs on a graph with negative arcs but no negative cycle.
func ExampleBellmanFord() {
	arcs := []bellmanford.WeightedArc{
		{From: 0, To: 5, Weight: 8}, {From: 0, To: 1, Weight: 10}, {From: 5, To: 4, Weight: 1},
		{From: 4, To: 1, Weight: -4}, {From: 4, To: 3, Weight: -1}, {From: 1, To: 3, Weight: 2},
		{From: 3, To: 2, Weight: -2}, {From: 2, To: 1, Weight: 1},
	}
	dist, _, err := bellmanford.BellmanFord(6, arcs, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 5 5 7 9 8]
}
