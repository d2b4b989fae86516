// File: errors.go
// Role: sentinel errors for the cpra package and its copra/slpa siblings.
//
// Error policy (mirrors lvlath/builder):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites attach context with fmt.Errorf("...: %w", err).
package cpra

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed to an entry point.
	ErrGraphNil = errors.New("cpra: graph is nil")

	// ErrInvalidCapacity is returned when the labelset capacity L is < 1.
	ErrInvalidCapacity = errors.New("cpra: label capacity must be >= 1")

	// ErrLabelLengthMismatch is returned when initial labels q has a length
	// different from the graph's span.
	ErrLabelLengthMismatch = errors.New("cpra: initial labels length does not match graph span")

	// ErrInvalidOption is returned when a functional Option carries an
	// out-of-range value (e.g. negative Repeat, Tolerance outside [0,1]).
	ErrInvalidOption = errors.New("cpra: invalid option supplied")

	// ErrNilPriorLabels is returned by the dynamic entry points when the
	// required prior-labels argument q is nil.
	ErrNilPriorLabels = errors.New("cpra: dynamic entry points require prior labels")
)
