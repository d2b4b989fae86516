package cpra

import (
	"fmt"
	"time"
)

// Options configures a single label-propagation run. It is shared verbatim
// by copra and slpa; each package's own DefaultOptions wraps NewOptions
// with the flavor-specific default MaxIterations (100 for COPRA, 20 for
// SLPA).
//
// Zero value is not meaningful on its own; build via NewOptions and
// override with the WithX functions below.
type Options struct {
	// Repeat is the number of times the inner computation is executed and
	// timed, for time-averaging. Default: 1.
	Repeat int

	// Tolerance bounds the fraction of vertices that may change label in
	// the final pass before the loop is considered converged. Default: 0.05.
	Tolerance float64

	// MaxIterations bounds the number of passes. Default depends on flavor.
	MaxIterations int

	// Seed drives SLPA's speaker draw. No option enables a random listener
	// tiebreak, so Seed does not affect tiebreaks. COPRA ignores Seed.
	Seed int64

	// SelfLoops enables scanning self-loop edges during the neighborhood
	// scan. Default: false.
	SelfLoops bool

	// StrictTiebreak, when true, disables the legacy (c&2) parity tiebreak
	// in SLPA's listener step: on equal weight the running maximum is never
	// replaced. Default: false (legacy tiebreak enabled).
	StrictTiebreak bool

	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// NewOptions returns an Options value with the given default MaxIterations
// and otherwise-spec-default fields, then applies opts in order. If any
// Option recorded an error, it is returned immediately.
func NewOptions(defaultMaxIterations int, opts ...Option) (Options, error) {
	o := Options{
		Repeat:        1,
		Tolerance:     0.05,
		MaxIterations: defaultMaxIterations,
		Seed:          0,
		SelfLoops:     false,
		StrictTiebreak: false,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// WithRepeat sets the number of timed repetitions. r must be >= 1.
func WithRepeat(r int) Option {
	return func(o *Options) {
		if r < 1 {
			o.err = fmt.Errorf("%w: Repeat must be >= 1, got %d", ErrInvalidOption, r)
			return
		}
		o.Repeat = r
	}
}

// WithTolerance sets the convergence tolerance. t must be in [0, 1].
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 || t > 1 {
			o.err = fmt.Errorf("%w: Tolerance must be in [0,1], got %f", ErrInvalidOption, t)
			return
		}
		o.Tolerance = t
	}
}

// WithMaxIterations sets the iteration cap. n must be >= 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be >= 1, got %d", ErrInvalidOption, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSeed sets the PRNG seed consumed by SLPA's speaker draw.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSelfLoops enables or disables scanning self-loop edges (SELF=true).
func WithSelfLoops(enabled bool) Option {
	return func(o *Options) { o.SelfLoops = enabled }
}

// WithStrictTiebreak toggles SLPA's strict tiebreak mode; see DESIGN.md
// for why the legacy parity tiebreak is the default.
func WithStrictTiebreak(strict bool) Option {
	return func(o *Options) { o.StrictTiebreak = strict }
}

// Result is returned by every public entry point in copra and slpa.
type Result struct {
	// Membership holds, for every u in [0, span), the dominant community
	// assigned to u. Unused vertex keys map to themselves.
	Membership []int

	// Iterations is the number of passes actually run.
	Iterations int

	// Time is the (possibly averaged, see Options.Repeat) wall-clock cost
	// of the run.
	Time time.Duration
}

// Deletion is one undirected edge removal in a dynamic update batch.
type Deletion struct {
	U, V int
}

// Insertion is one undirected edge addition in a dynamic update batch.
type Insertion struct {
	U, V int
	W    float64
}

// ActiveFunc reports whether vertex u should be (re)processed this pass.
// The static entry points use a predicate that is always true; the
// delta-screening and frontier entry points narrow it to the affected set.
type ActiveFunc func(u int) bool

// ChangedFunc is invoked whenever a vertex's dominant community changes
// during a pass. The frontier strategy uses it to grow the affected set.
type ChangedFunc func(u int)

// AlwaysActive is the isActive predicate used by the static entry points.
func AlwaysActive(int) bool { return true }

// NoopChanged is the onChanged hook used when frontier growth is not needed.
func NoopChanged(int) {}
