package cpra

// Scan holds the reusable (vcs, vcout) scratch pair behind every
// neighborhood scan.
//
// Vcout is a dense map community -> accumulated weight, sized to the
// graph's span; Vcs is the sparse list of communities currently holding a
// non-zero Vcout entry. Clearing walks Vcs and zeroes only those slots,
// which is what keeps Clear, and therefore every pass, O(touched) rather
// than O(span).
type Scan struct {
	Vcs   []int
	Vcout []float64
}

// NewScan allocates a Scan sized for a graph of the given span. vcsCap
// bounds the initial capacity of Vcs; it should be at least the maximum
// vertex degree times the labelset capacity L, but Vcs grows on demand if
// that bound is exceeded.
func NewScan(span, vcsCap int) *Scan {
	return &Scan{
		Vcs:   make([]int, 0, vcsCap),
		Vcout: make([]float64, span),
	}
}

// Clear zeroes every slot listed in Vcs and empties Vcs. It never touches
// slots outside Vcs, preserving the invariant that Vcout is all-zero
// exactly where it is not indexed by Vcs.
func (s *Scan) Clear() {
	for _, c := range s.Vcs {
		s.Vcout[c] = 0
	}
	s.Vcs = s.Vcs[:0]
}

// Add accumulates w into community c, appending c to Vcs the first time it
// becomes non-zero.
func (s *Scan) Add(c int, w float64) {
	if s.Vcout[c] == 0 {
		s.Vcs = append(s.Vcs, c)
	}
	s.Vcout[c] += w
}
