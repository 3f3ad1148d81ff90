package converters

import "errors"

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNonIntegralWeight indicates a weight that dominikbraun/graph cannot
	// represent exactly.
	ErrNonIntegralWeight = errors.New("converters: weight is not an exactly representable integer")

	// ErrUndirected indicates an undirected source graph.
	ErrUndirected = errors.New("converters: graph must be directed")
)
