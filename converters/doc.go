// Package converters provides two-way adapters between digraph.Graph and
// github.com/dominikbraun/graph.
//
// ToDominik exports a digraph as a directed, weighted graph.Graph[int, int];
// FromDominik imports any directed graph.Graph whose vertex hashes are ordered
// and returns the key of every dense vertex index.
//
// dominikbraun/graph stores integer weights and at most one edge per ordered
// pair, so ToDominik requires integral weights and keeps the lightest of
// parallel arcs. Shortest distances are preserved in both directions.
package converters
