// Package copra implements the COPRA (Community Overlap PRopagation
// Algorithm) flavor of the label-propagation engine: each vertex carries a
// bounded labelset of (community, belonging coefficient) pairs, refined by
// one scan+choose pass per iteration until the fraction of changed
// vertices drops to the configured tolerance.
//
// What
//
//   - Labelset/Label: the per-vertex (community, coefficient) store.
//   - ScanCommunities/ChooseCommunity: the scan and choose kernels.
//   - Static/DynamicDeltaScreening/DynamicFrontier: the three public entry
//     points, returning a cpra.Result.
//   - BestCommunities/CountCommunities: reduction helpers over the final
//     labelsets, the latter a community-size census pass.
//
// Why
//
//   - Overlapping-community detection: unlike plain label propagation,
//     COPRA keeps up to L candidate communities per vertex with a
//     normalized belonging coefficient, so a vertex straddling two
//     clusters can be reported as belonging to both.
//
// Determinism
//
//	Given an identical graph, initial labels, and Options, two Static runs
//	produce bit-identical membership: the scan visits edges in the graph's
//	own deterministic order, and ChooseCommunity sorts scan.Vcs (itself
//	append-ordered) by weight descending with sort.Slice. That sort is not
//	stable and has no community-id tiebreak, but it is deterministic for
//	identical input, so equal-weight candidates land in the same order on
//	every run.
//
// Errors
//
//   - cpra.ErrGraphNil, cpra.ErrInvalidCapacity, cpra.ErrLabelLengthMismatch,
//     cpra.ErrNilPriorLabels, or any wrapped cpra.ErrInvalidOption from a
//     functional Option.
package copra
