package copra

import (
	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
)

// Static runs the full COPRA recompute over every vertex: isActive is
// unconditionally true. l is the labelset capacity L; q, if non-nil,
// seeds initial labels instead of per-vertex singleton communities.
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

	vtot := VertexWeights(g)
	seed := func() []Labelset {
		if q == nil {
			return NewVcom(g, l)
		}
		return NewVcomFromLabels(g, l, q)
	}
	return run(g, seed, vtot, l, o, cpra.AlwaysActive, cpra.NoopChanged), nil
}

// DynamicDeltaScreening computes the affected set once via delta-screening
// against the prior labels q, then runs the iteration loop restricted to
// that set.
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

	vtot := VertexWeights(g)
	communityOf := func(u int) int { return q[u] }
	priorVcom := NewVcomFromLabels(g, l, q)
	insScan := cpra.NewScan(g.Span(), scanCapacityHint(g, l))
	b := 1.0 / float64(l)

	chooser := func(u int, group []cpra.Insertion) int {
		insScan.Clear()
		for _, ins := range group {
			if communityOf(u) == communityOf(ins.V) {
				continue
			}
			for _, lbl := range priorVcom[ins.V] {
				if lbl.Coef <= 0 {
					break
				}
				insScan.Add(lbl.Community, ins.W*lbl.Coef)
			}
		}
		labs := ChooseCommunity(insScan, u, l, b*vtot[u])
		return labs[0].Community
	}

	affected := cpra.DeltaScreening(g, deletions, insertions, communityOf, chooser)
	fa := func(u int) bool { return affected[u] }

	seed := func() []Labelset { return NewVcomFromLabels(g, l, q) }
	return run(g, seed, vtot, l, o, fa, cpra.NoopChanged), nil
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

	vtot := VertexWeights(g)
	communityOf := func(u int) int { return q[u] }
	affected := cpra.Frontier(deletions, insertions, communityOf, g.Span())
	fa := func(u int) bool { return affected[u] }
	fp := cpra.FrontierChangedHook(g, affected)

	seed := func() []Labelset { return NewVcomFromLabels(g, l, q) }
	return run(g, seed, vtot, l, o, fa, fp), nil
}
