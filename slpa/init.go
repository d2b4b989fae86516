package slpa

import "github.com/katalvlaran/lvlath-cpra/graphview"

// NewVcom allocates a dense vector of length span of capacity-l Rings,
// singleton-initialized: each live vertex u gets slot 0 = u,
// every other slot (and every non-live vertex's whole Ring) zero.
func NewVcom(g graphview.Graph, l int) []Ring {
	vcom := make([]Ring, g.Span())
	for i := range vcom {
		vcom[i] = make(Ring, l)
	}
	g.ForEachVertexKey(func(u int) { vcom[u][0] = u })
	return vcom
}

// NewVcomFromLabels initializes vcom from prior labels q: slot 0 of
// vertex u becomes q[u].
func NewVcomFromLabels(g graphview.Graph, l int, q []int) []Ring {
	vcom := make([]Ring, g.Span())
	for i := range vcom {
		vcom[i] = make(Ring, l)
	}
	g.ForEachVertexKey(func(u int) { vcom[u][0] = q[u] })
	return vcom
}

// LiveSet marks every vertex key the graph actually reports via
// ForEachVertexKey, distinguishing live vertices (that get a real Ring)
// from unused keys within [0, span) that must report themselves.
func LiveSet(g graphview.Graph) []bool {
	live := make([]bool, g.Span())
	g.ForEachVertexKey(func(u int) { live[u] = true })
	return live
}
