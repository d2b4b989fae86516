package copra

import "github.com/katalvlaran/lvlath-cpra/graphview"

// NewVcom allocates a dense vector of length span of capacity-l Labelsets,
// singleton-initialized: each live vertex u gets slot 0 = (u, 1),
// every other slot (and every non-live vertex's whole Labelset) zero.
func NewVcom(g graphview.Graph, l int) []Labelset {
	vcom := make([]Labelset, g.Span())
	for i := range vcom {
		vcom[i] = make(Labelset, l)
	}
	g.ForEachVertexKey(func(u int) {
		vcom[u][0] = Label{Community: u, Coef: 1}
	})
	return vcom
}

// NewVcomFromLabels initializes vcom from prior labels q: slot 0 of
// vertex u becomes (q[u], 1).
func NewVcomFromLabels(g graphview.Graph, l int, q []int) []Labelset {
	vcom := make([]Labelset, g.Span())
	for i := range vcom {
		vcom[i] = make(Labelset, l)
	}
	g.ForEachVertexKey(func(u int) {
		vcom[u][0] = Label{Community: q[u], Coef: 1}
	})
	return vcom
}

// VertexWeights computes vtot[u], the total incident edge weight of each
// vertex, used as the basis of the threshold W = B * vtot[u].
func VertexWeights(g graphview.Graph) []float64 {
	vtot := make([]float64, g.Span())
	g.ForEachVertexKey(func(u int) {
		g.ForEachEdge(u, func(_ int, w float64) { vtot[u] += w })
	})
	return vtot
}
