package copra

import (
	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
)

// ScanCommunities accumulates, for vertex u, the weight each neighbor
// contributes to each of its candidate communities into scan. A
// neighbor v contributes w*b for every (community, b) entry in vcom[v]
// with b > 0; entries are stored in decreasing-b order, so a zero-
// coefficient slot terminates that neighbor's contribution early.
//
// selfLoops mirrors the SELF template parameter: when false (the default),
// an edge from u to itself is skipped.
func ScanCommunities(scan *cpra.Scan, g graphview.Graph, vcom []Labelset, u int, selfLoops bool) {
	g.ForEachEdge(u, func(v int, w float64) {
		if !selfLoops && u == v {
			return
		}
		for _, lbl := range vcom[v] {
			if lbl.Coef <= 0 {
				break
			}
			scan.Add(lbl.Community, w*lbl.Coef)
		}
	})
}
