// Package slpa implements the SLPA (Speaker-Listener Propagation
// Algorithm) flavor of the label-propagation engine: each vertex carries a
// bounded ring of L labels, one per past pass, with no coefficients. Each
// pass, every active vertex acts as a listener: each of its neighbors
// (the "speaker") picks one of its own stored labels uniformly at random,
// and the listener adopts whichever label was proposed with the most
// total edge weight. The final label is the most frequent entry among the
// ring's filled prefix.
//
// What
//
//   - Ring: the per-vertex bounded history of past labels.
//   - ScanCommunities/ChooseListener: the speaker-draw scan and the
//     listener's argmax-with-tiebreak choose kernel.
//   - Static/DynamicDeltaScreening/DynamicFrontier: the three public entry
//     points.
//   - BestCommunities/CountCommunities: majority-vote reduction over the
//     final ring prefix.
//
// Randomness
//
//	The speaker draw is the only stochastic step; it is driven by a
//	seeded internal/rng stream so a run is fully reproducible given an
//	identical graph, Options.Seed, and initial labels. The listener's
//	tiebreak is deterministic by default (the legacy (c&2) parity trick);
//	Options.StrictTiebreak switches to "never replace on tie" instead (see
//	DESIGN.md for the resolution).
//
// Iteration count
//
//	Bounded by min(Options.MaxIterations, L-1): the ring has only L slots,
//	slot 0 holding the initial label, so at most L-1 further passes can be
//	recorded.
package slpa
