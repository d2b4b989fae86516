package graphview

import "errors"

// ErrVertexOutOfRange is returned when a vertex key falls outside the
// Dense graph's configured [0, span) range.
var ErrVertexOutOfRange = errors.New("graphview: vertex key out of range")

// ErrKeyNotFound is returned by an Index when a string vertex ID has no
// corresponding integer key.
var ErrKeyNotFound = errors.New("graphview: vertex id has no assigned key")
