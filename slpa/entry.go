package slpa

import (
	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
)

// Static runs the full SLPA recompute over every vertex: isActive is
// unconditionally true. l is the ring capacity L; q, if non-nil, seeds
// initial labels instead of per-vertex singleton communities.
func Static(g graphview.Graph, q []int, l int, opts ...cpra.Option) (cpra.Result, error) {
	if g == nil {
		return cpra.Result{}, cpra.ErrGraphNil
	}
	if l < 1 {
		return cpra.Result{}, cpra.ErrInvalidCapacity
	}
	if q != nil && len(q) != g.Span() {
		return cpra.Result{}, cpra.ErrLabelLengthMismatch
	}
	o, err := DefaultOptions(opts...)
	if err != nil {
		return cpra.Result{}, err
	}

	seed := func() []Ring {
		if q == nil {
			return NewVcom(g, l)
		}
		return NewVcomFromLabels(g, l, q)
	}
	return run(g, seed, l, o, cpra.AlwaysActive, cpra.NoopChanged), nil
}

// DynamicDeltaScreening computes the affected set once via delta-screening
// against the prior labels q, then runs the iteration loop restricted to
// that set. The insertion chooser mirrors the
// listener's own argmax (no tiebreak randomness, since the chooser only
// needs to know whether the vertex would move communities at all).
func DynamicDeltaScreening(g graphview.Graph, deletions []cpra.Deletion, insertions []cpra.Insertion, q []int, l int, opts ...cpra.Option) (cpra.Result, error) {
	if g == nil {
		return cpra.Result{}, cpra.ErrGraphNil
	}
	if l < 1 {
		return cpra.Result{}, cpra.ErrInvalidCapacity
	}
	if q == nil {
		return cpra.Result{}, cpra.ErrNilPriorLabels
	}
	if len(q) != g.Span() {
		return cpra.Result{}, cpra.ErrLabelLengthMismatch
	}
	o, err := DefaultOptions(opts...)
	if err != nil {
		return cpra.Result{}, err
	}

	communityOf := func(u int) int { return q[u] }
	insScan := cpra.NewScan(g.Span(), scanCapacityHint(g))

	chooser := func(u int, group []cpra.Insertion) int {
		insScan.Clear()
		for _, ins := range group {
			if communityOf(u) == communityOf(ins.V) {
				continue
			}
			insScan.Add(q[ins.V], ins.W)
		}
		return ChooseListener(insScan, u, o.StrictTiebreak, nil)
	}

	affected := cpra.DeltaScreening(g, deletions, insertions, communityOf, chooser)
	fa := func(u int) bool { return affected[u] }

	seed := func() []Ring { return NewVcomFromLabels(g, l, q) }
	return run(g, seed, l, o, fa, cpra.NoopChanged), nil
}

// DynamicFrontier computes the initial affected set with the coarser
// frontier strategy, then grows it during iteration whenever a vertex's
// label changes (the onChanged hook).
func DynamicFrontier(g graphview.Graph, deletions []cpra.Deletion, insertions []cpra.Insertion, q []int, l int, opts ...cpra.Option) (cpra.Result, error) {
	if g == nil {
		return cpra.Result{}, cpra.ErrGraphNil
	}
	if l < 1 {
		return cpra.Result{}, cpra.ErrInvalidCapacity
	}
	if q == nil {
		return cpra.Result{}, cpra.ErrNilPriorLabels
	}
	if len(q) != g.Span() {
		return cpra.Result{}, cpra.ErrLabelLengthMismatch
	}
	o, err := DefaultOptions(opts...)
	if err != nil {
		return cpra.Result{}, err
	}

	communityOf := func(u int) int { return q[u] }
	affected := cpra.Frontier(deletions, insertions, communityOf, g.Span())
	fa := func(u int) bool { return affected[u] }
	fp := cpra.FrontierChangedHook(g, affected)

	seed := func() []Ring { return NewVcomFromLabels(g, l, q) }
	return run(g, seed, l, o, fa, fp), nil
}
