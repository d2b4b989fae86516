package graphview

import "sort"

// neighbor is one adjacency-list entry: a destination key and edge weight.
type neighbor struct {
	v int
	w float64
}

// Dense is a reference Graph backed by a per-vertex adjacency slice, over
// dense integer vertex keys in [0, span), grounded on core.Graph's own
// adjacency-list style (core/methods_adjacent.go), adapted here to dense
// integer keys instead of string IDs and to the read-only capability set
// this package exposes.
//
// Dense is not safe for concurrent writes; build it fully before handing
// it to copra/slpa, which only ever read it.
type Dense struct {
	span    int
	present []bool
	order   int
	adj     [][]neighbor
}

// NewDense allocates an empty Dense graph with room for vertex keys in
// [0, span).
func NewDense(span int) *Dense {
	return &Dense{
		span:    span,
		present: make([]bool, span),
		adj:     make([][]neighbor, span),
	}
}

// AddVertex marks u as live without adding any edge. It is a no-op if u is
// already live. Panics if u is outside [0, span) — callers are expected to
// size the Dense graph correctly up front, mirroring builder's validated
// constructors.
func (d *Dense) AddVertex(u int) {
	d.checkRange(u)
	if !d.present[u] {
		d.present[u] = true
		d.order++
	}
}

// AddEdge appends a directed edge u->v with weight w, marking both
// endpoints live. Callers wanting a symmetric relation should pair this
// with AddEdge(v, u, w) or use AddUndirectedEdge.
func (d *Dense) AddEdge(u, v int, w float64) {
	d.AddVertex(u)
	d.AddVertex(v)
	d.adj[u] = append(d.adj[u], neighbor{v: v, w: w})
}

// AddUndirectedEdge adds both (u, v, w) and (v, u, w), satisfying the
// symmetry every Graph implementation must provide. A self-loop (u == v)
// is added once.
func (d *Dense) AddUndirectedEdge(u, v int, w float64) {
	d.AddEdge(u, v, w)
	if u != v {
		d.AddEdge(v, u, w)
	}
}

// SortEdges sorts each vertex's adjacency slice by neighbor key, so that
// iteration order is deterministic independent of insertion order.
func (d *Dense) SortEdges() {
	for u := range d.adj {
		edges := d.adj[u]
		sort.Slice(edges, func(i, j int) bool { return edges[i].v < edges[j].v })
	}
}

func (d *Dense) checkRange(u int) {
	if u < 0 || u >= d.span {
		panic(ErrVertexOutOfRange)
	}
}

// ForEachVertexKey implements Graph.
func (d *Dense) ForEachVertexKey(f func(u int)) {
	for u := 0; u < d.span; u++ {
		if d.present[u] {
			f(u)
		}
	}
}

// ForEachEdge implements Graph.
func (d *Dense) ForEachEdge(u int, f func(v int, w float64)) {
	for _, n := range d.adj[u] {
		f(n.v, n.w)
	}
}

// ForEachEdgeKey implements Graph.
func (d *Dense) ForEachEdgeKey(u int, f func(v int)) {
	for _, n := range d.adj[u] {
		f(n.v)
	}
}

// Span implements Graph.
func (d *Dense) Span() int { return d.span }

// Order implements Graph.
func (d *Dense) Order() int { return d.order }
