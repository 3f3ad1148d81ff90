// Package trabalhografos is a collection of single-source shortest-path
// solvers for directed graphs, built around bounded multi-source shortest
// paths (BMSSP) and the classic baselines it is measured against.
//
// What is inside?
//
//	• digraph/    : dense-index directed graph with float64 arc weights
//	• frontier/   : batched, bounded priority container used by the recursion
//	• bmssp/      : the BMSSP solver: parameters, base case, pivots, recursion
//	• dijkstra/   : heap and dense O(V²) Dijkstra (reference oracle)
//	• bellmanford/: Bellman-Ford over arc lists, negative-cycle detection
//	• bfs/        : breadth-first search, hop counts and reachability
//	• builder/    : seeded graph generators (random, path, cycle, grid …)
//	• converters/ : adapters to and from github.com/dominikbraun/graph
//	• metrics/    : Prometheus collector for solver runs
//	• cmd/sssp-bench: comparison harness driven by a YAML scenario file
//
// Quick example:
//
//	g := digraph.New(3)
//	_ = g.AddArc(0, 1, 2)
//	_ = g.AddArc(1, 2, 1)
//	res, _ := bmssp.Solve(g, 0)
//	fmt.Println(res.Dist) // [0 2 3]
//
// All solvers return +Inf for unreachable vertices and share the
// digraph.Predecessor record for path reconstruction.
package trabalhografos
