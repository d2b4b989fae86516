package slpa

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
	"github.com/katalvlaran/lvlath-cpra/internal/rng"
)

// moveIteration runs one SLPA pass over every vertex for which fa reports
// true, writing each active vertex's new label to ring slot pass+1 and
// comparing against slot pass to detect change. pass is the
// 0-based index of this pass, so filled = pass+1 is the number of ring
// slots every vertex already holds going in.
//
// A vertex for which fa reports false is not scanned: it carries its
// slot-pass label forward into slot pass+1 unchanged. This keeps its ring
// position in lock-step with the active vertices' (so a later pass's
// filled count is still meaningful for every vertex) without the vertex
// itself participating in this pass's propagation — an extension of the
// isActive seam to SLPA's ring (see DESIGN.md).
func moveIteration(scan *cpra.Scan, g graphview.Graph, vcom []Ring, pass int, selfLoops, strict bool, randomTiebreak, speakerRNG *rand.Rand, fa cpra.ActiveFunc, fp cpra.ChangedFunc) int {
	changed := 0
	filled := pass + 1
	g.ForEachVertexKey(func(u int) {
		prev := vcom[u][pass]
		if !fa(u) {
			vcom[u][pass+1] = prev
			return
		}
		scan.Clear()
		ScanCommunities(scan, g, vcom, filled, u, speakerRNG, selfLoops)
		c := ChooseListener(scan, u, strict, randomTiebreak)
		vcom[u][pass+1] = c
		if c != prev {
			changed++
			fp(u)
		}
	})
	return changed
}

// scanCapacityHint estimates a starting capacity for the Vcs scratch
// slice; Vcs grows on demand, so this only affects early allocations.
func scanCapacityHint(g graphview.Graph) int {
	return 8
}

// run drives the full init+loop+reduce sequence, averaged over o.Repeat
// per cpra.MeasureDuration, and is shared by Static and the two dynamic
// entry points (they differ only in how vcom is seeded and in fa/fp).
// l is the ring capacity L; the loop runs at most min(o.MaxIterations,
// l-1) passes.
func run(g graphview.Graph, seed func() []Ring, l int, o cpra.Options, fa cpra.ActiveFunc, fp cpra.ChangedFunc) cpra.Result {
	span := g.Span()
	order := g.Order()
	scan := cpra.NewScan(span, scanCapacityHint(g))
	live := LiveSet(g)

	maxPasses := o.MaxIterations
	if l-1 < maxPasses {
		maxPasses = l - 1
	}
	if maxPasses < 0 {
		maxPasses = 0
	}

	var randomTiebreak *rand.Rand
	speakerRNG := rng.FromSeed(o.Seed)

	var membership []int
	iterations := 0
	pass := 0
	elapsed := cpra.MeasureDuration(func() {
		if order == 0 {
			membership = make([]int, span)
			for u := 0; u < span; u++ {
				membership[u] = u
			}
			iterations = 0
			pass = 0
			return
		}

		vcom := seed()
		pass = 0
		iterations = 0
		for iterations < maxPasses {
			n := moveIteration(scan, g, vcom, pass, o.SelfLoops, o.StrictTiebreak, randomTiebreak, speakerRNG, fa, fp)
			pass++
			iterations++
			if float64(n)/float64(order) <= o.Tolerance {
				break
			}
		}
		membership = BestCommunities(vcom, pass, live)
	}, o.Repeat)

	return cpra.Result{Membership: membership, Iterations: iterations, Time: elapsed}
}
