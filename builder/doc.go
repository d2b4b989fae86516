// Package builder provides reusable “functional‐options”‐style building blocks
// for graph construction. It lives alongside core to centralize common
// configuration, ID schemes, weight distributions, and validation logic,
// keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinGridDim.
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens for builderErrorf context.
//
// Guarantees:
//
//   - Vertex insertion is idempotent (core.AddVertex ignores an existing ID). Edges
//     are not deduplicated: re-running a constructor on g adds its edges again, which
//     a simple graph rejects with core.ErrMultiEdgeNotAllowed and a multigraph stores
//     as parallel edges.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime errors for invalid build parameters carry a "<Method>: " prefix and
//     wrap a builder sentinel with %w, so callers branch with errors.Is.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Unit tests live in builder/*_test.go (builder_impl_test.go, config_test.go,
//     id_fn_test.go, weight_fn_test.go).
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
