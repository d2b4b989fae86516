package graphview

import "github.com/katalvlaran/lvlath-cpra/core"

// Index bijects between core.Graph's string vertex IDs and the dense
// integer keys the engine requires. Callers typically build one by
// assigning keys in core.Graph.Vertices() order.
type Index interface {
	// ID returns the string vertex ID for integer key u.
	ID(u int) string

	// Key returns the integer key assigned to string vertex id, or an
	// error satisfying errors.Is(err, ErrKeyNotFound) if none was assigned.
	Key(id string) (int, error)
}

// MapIndex is a simple Index backed by two lookup tables, sufficient for
// graphs built once and then fed into copra/slpa.
type MapIndex struct {
	ids  []string
	keys map[string]int
}

// NewMapIndex builds a MapIndex assigning keys 0..len(ids)-1 to ids in
// order. Callers normally pass g.Vertices() (lexicographically sorted by
// core.Graph.Vertices()).
func NewMapIndex(ids []string) *MapIndex {
	keys := make(map[string]int, len(ids))
	for i, id := range ids {
		keys[id] = i
	}
	return &MapIndex{ids: ids, keys: keys}
}

// ID implements Index.
func (m *MapIndex) ID(u int) string { return m.ids[u] }

// Key implements Index.
func (m *MapIndex) Key(id string) (int, error) {
	k, ok := m.keys[id]
	if !ok {
		return 0, ErrKeyNotFound
	}
	return k, nil
}

// FromCore adapts a *core.Graph into the Graph capability set, via idx, so
// an existing lvlath graph can be fed directly into copra/slpa without
// rebuilding it as a Dense graph. The wrapped core.Graph must already be
// symmetric (undirected core.Graph edges already are; directed or
// mixed-mode core.Graph edges must be added in both directions by the
// caller for the engine's semantics to hold).
type FromCore struct {
	g    *core.Graph
	idx  Index
	span int
}

// NewFromCore wraps g using idx, reporting span as the adapter's Span().
// span should be at least len(g.Vertices()); it is not derived from g
// because idx may reserve keys for vertices g does not (yet) contain.
func NewFromCore(g *core.Graph, idx Index, span int) *FromCore {
	return &FromCore{g: g, idx: idx, span: span}
}

// ForEachVertexKey implements Graph.
func (c *FromCore) ForEachVertexKey(f func(u int)) {
	for _, id := range c.g.Vertices() {
		u, err := c.idx.Key(id)
		if err != nil {
			continue
		}
		f(u)
	}
}

// ForEachEdge implements Graph.
func (c *FromCore) ForEachEdge(u int, f func(v int, w float64)) {
	id := c.idx.ID(u)
	edges, err := c.g.Neighbors(id)
	if err != nil {
		return
	}
	for _, e := range edges {
		other := e.To
		if other == id {
			other = e.From
		}
		v, err := c.idx.Key(other)
		if err != nil {
			continue
		}
		f(v, float64(e.Weight))
	}
}

// ForEachEdgeKey implements Graph.
func (c *FromCore) ForEachEdgeKey(u int, f func(v int)) {
	c.ForEachEdge(u, func(v int, _ float64) { f(v) })
}

// Span implements Graph.
func (c *FromCore) Span() int { return c.span }

// Order implements Graph.
func (c *FromCore) Order() int { return len(c.g.Vertices()) }
