package copra

import (
	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
)

// moveIteration runs one pass of scan+choose over every vertex for which fa
// reports true, returning the number of vertices whose dominant community
// changed this pass. Changed vertices invoke fp, the dynamic-frontier
// growth seam.
func moveIteration(scan *cpra.Scan, g graphview.Graph, vcom []Labelset, vtot []float64, l int, selfLoops bool, fa cpra.ActiveFunc, fp cpra.ChangedFunc) int {
	changed := 0
	b := 1.0 / float64(l)
	g.ForEachVertexKey(func(u int) {
		if !fa(u) {
			return
		}
		prev := vcom[u][0].Community
		scan.Clear()
		ScanCommunities(scan, g, vcom, u, selfLoops)
		vcom[u] = ChooseCommunity(scan, u, l, b*vtot[u])
		if vcom[u][0].Community != prev {
			changed++
			fp(u)
		}
	})
	return changed
}

// scanCapacityHint estimates a starting capacity for the Vcs scratch slice:
// l*8 (or l for an empty graph), a modest constant multiple of the labelset
// capacity that keeps early allocations cheap without affecting
// correctness (Vcs grows on demand).
func scanCapacityHint(g graphview.Graph, l int) int {
	span := g.Span()
	if span == 0 {
		return l
	}
	return l * 8
}

// run drives the full init+loop+reduce sequence, averaged over
// o.Repeat per cpra.MeasureDuration, and is shared by Static and the two
// dynamic entry points (they differ only in how vcom is seeded and in fa/fp).
func run(g graphview.Graph, seed func() []Labelset, vtot []float64, l int, o cpra.Options, fa cpra.ActiveFunc, fp cpra.ChangedFunc) cpra.Result {
	span := g.Span()
	order := g.Order()
	scan := cpra.NewScan(span, scanCapacityHint(g, l))

	var membership []int
	iterations := 0
	elapsed := cpra.MeasureDuration(func() {
		if order == 0 {
			membership = make([]int, span)
			for u := 0; u < span; u++ {
				membership[u] = u
			}
			iterations = 0
			return
		}

		vcom := seed()
		iterations = 0
		for iterations < o.MaxIterations {
			n := moveIteration(scan, g, vcom, vtot, l, o.SelfLoops, fa, fp)
			iterations++
			if float64(n)/float64(order) <= o.Tolerance {
				break
			}
		}
		membership = BestCommunities(vcom, span)
	}, o.Repeat)

	return cpra.Result{Membership: membership, Iterations: iterations, Time: elapsed}
}
