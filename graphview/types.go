package graphview

// Graph is the read-only adjacency capability set required by copra and
// slpa. Implementations must iterate edges consistently across
// calls within a single run, and must already be symmetrized: every
// (u, v, w) visited from ForEachEdge(u, ...) implies the engine may assume
// a corresponding (v, u, w) exists when it later visits v.
type Graph interface {
	// ForEachVertexKey invokes f once for every live vertex key, in
	// ascending key order.
	ForEachVertexKey(f func(u int))

	// ForEachEdge invokes f(v, w) once per out-edge of u, in a
	// deterministic order that is stable across calls.
	ForEachEdge(u int, f func(v int, w float64))

	// ForEachEdgeKey invokes f(v) once per out-neighbor of u, in the same
	// order as ForEachEdge.
	ForEachEdgeKey(u int, f func(v int))

	// Span returns one past the maximum vertex key ever added; vertex keys
	// are dense within [0, Span()), though some keys may be unused.
	Span() int

	// Order returns the number of live vertices.
	Order() int
}
