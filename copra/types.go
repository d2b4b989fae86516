package copra

import "github.com/katalvlaran/lvlath-cpra/cpra"

// defaultMaxIterations is COPRA's default iteration cap.
const defaultMaxIterations = 100

// Label is one (community, belonging coefficient) entry in a Labelset.
type Label struct {
	Community int
	Coef      float64
}

// Labelset is a vertex's fixed-capacity, decreasing-coefficient ordered
// sequence of community memberships. len(Labelset) is always the
// configured capacity L; unused trailing slots hold Coef 0.
type Labelset []Label

// DefaultOptions returns cpra.Options with COPRA's default MaxIterations,
// then applies opts.
func DefaultOptions(opts ...cpra.Option) (cpra.Options, error) {
	return cpra.NewOptions(defaultMaxIterations, opts...)
}
