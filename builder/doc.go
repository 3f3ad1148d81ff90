// Package builder provides deterministic "functional-options"-style generators
// of digraph.Graph fixtures for the shortest-path solvers, their tests and the
// comparison harness.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph and applies Constructors in order.
//     – Constructor:       a closure that appends vertices and arcs to a graph.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function, loop and symmetry flags.
//   - Topologies:
//     – RandomSparse:      every ordered pair gets an arc with probability p.
//     – Path, Cycle, Star, Complete, Grid.
//   - Arc-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntUniformWeightFn: uniform integer in [lo,hi].
//     – ChoiceWeightFn:    uniform pick from a fixed set (tie-heavy fixtures).
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Each constructor appends fresh vertices; composing constructors in one
//     BuildGraph call yields disjoint components in call order.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) wrapped
//     with the constructor name for runtime parameter problems.
//   - Same seed, options and constructor order ⇒ identical graphs.
package builder
