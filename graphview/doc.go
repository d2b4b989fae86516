// Package graphview defines the read-only graph capability set that the
// copra and slpa engines consume, plus a reference dense implementation
// and an adapter over lvlath's own core.Graph type.
//
// What
//
//   - Graph: the capability set {ForEachVertexKey, ForEachEdge,
//     ForEachEdgeKey, Span, Order}. Callers are never required to hand the
//     engine a concrete adjacency type.
//   - Dense: an adjacency-list reference implementation over dense integer
//     vertex keys in [0, span), for tests and the bench driver.
//   - FromCore: an adapter that exposes an existing *core.Graph (string
//     vertex IDs) as a graphview.Graph, via a caller-supplied Index
//     bijection.
//
// Why
//
//   - Keeping the engine behind an interface rather than a concrete
//     adjacency type means CSR, adjacency-list, and core.Graph itself can
//     all plug into copra/slpa unmodified.
//
// The graph must be symmetric and is immutable for the duration of any
// single call into the engine; this package does not enforce symmetry, it
// only iterates whatever is handed to it.
package graphview
