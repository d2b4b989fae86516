package slpa

import "github.com/katalvlaran/lvlath-cpra/cpra"

// defaultMaxIterations is SLPA's default iteration cap, further bounded
// at runtime by L-1 (a ring of length L has only L-1 writable slots
// beyond the initial one).
const defaultMaxIterations = 20

// Ring is a vertex's fixed-capacity history of past labels, one per
// pass plus the initial singleton at slot 0. len(Ring) is always the
// configured capacity L; slots beyond the current pass are zero-valued
// and must not be read until filled.
type Ring []int

// DefaultOptions returns cpra.Options with SLPA's default MaxIterations,
// then applies opts (mirrors copra.DefaultOptions).
func DefaultOptions(opts ...cpra.Option) (cpra.Options, error) {
	return cpra.NewOptions(defaultMaxIterations, opts...)
}
