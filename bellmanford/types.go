package bellmanford

import "errors"

// Sentinel errors returned by BellmanFord.
var (
	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrSourceOutOfRange indicates a source outside 0..n-1.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrArcOutOfRange indicates an arc endpoint outside 0..n-1.
	ErrArcOutOfRange = errors.New("bellmanford: arc endpoint out of range")

	// ErrInvalidWeight indicates a NaN or infinite arc weight.
	ErrInvalidWeight = errors.New("bellmanford: arc weight must be finite")
)

// WeightedArc is a directed arc From→To. Weight may be negative.
type WeightedArc struct {
	From   int
	To     int
	Weight float64
}
