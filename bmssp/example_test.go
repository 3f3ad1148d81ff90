// SPDX-License-Identifier: MIT
package bmssp_test

import (
	"context"
	"fmt"

	"github.com/lucasccalmon/TrabalhoGrafos/bmssp"
	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// ExampleSolve computes distances and one shortest path on a five-vertex graph.
func ExampleSolve() {
	g := digraph.New(5)
	for _, a := range []struct {
		U, V int
		W    float64
	}{
		{0, 1, 4}, {0, 2, 2}, {1, 2, 3}, {1, 3, 2}, {1, 4, 3},
		{2, 1, 1}, {2, 3, 4}, {2, 4, 5}, {4, 3, 1},
	} {
		_ = g.AddArc(a.U, a.V, a.W)
	}

	res, err := bmssp.Solve(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, total, _ := res.PathTo(3)
	fmt.Println(res.Dist)
	fmt.Println(path, total)
	// Output:
	// [0 3 2 5 6]
	// [0 2 1 3] 5
}

// ExampleSolveMany runs one solve per source.
func ExampleSolveMany() {
	g := digraph.New(3)
	_ = g.AddArc(0, 1, 1)
	_ = g.AddArc(1, 2, 1)
	_ = g.AddArc(2, 0, 1)

	results, err := bmssp.SolveMany(context.Background(), g, []int{0, 1, 2}, bmssp.WithParallelism(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Source, r.Dist)
	}
	// Output:
	// 0 [0 1 2]
	// 1 [2 0 1]
	// 2 [1 2 0]
}

// ExampleComputeParams shows the derived recursion parameters.
func ExampleComputeParams() {
	fmt.Printf("%+v\n", bmssp.ComputeParams(1_000_000))
	// Output: {K:2 T:7 Levels:3}
}
