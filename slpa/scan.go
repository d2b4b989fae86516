package slpa

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
)

// ScanCommunities accumulates, for vertex u as listener, the weight each
// neighbor contributes via its own independent speaker draw. filled is
// the number of valid ring slots every neighbor
// currently holds (the pass index plus one); each neighbor draws one of
// its own stored labels uniformly at random via speakerRNG and proposes
// it with the edge's full weight.
//
// selfLoops mirrors the SELF template parameter: when false (the
// default), an edge from u to itself is skipped.
func ScanCommunities(scan *cpra.Scan, g graphview.Graph, vcom []Ring, filled int, u int, speakerRNG *rand.Rand, selfLoops bool) {
	g.ForEachEdge(u, func(v int, w float64) {
		if !selfLoops && u == v {
			return
		}
		r := speakerRNG.Intn(filled)
		scan.Add(vcom[v][r], w)
	})
}
