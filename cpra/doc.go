// Package cpra holds the types, scratch buffers, and affected-set logic
// shared by the copra and slpa packages: the Options/Result pair, the
// edge-batch types consumed by the dynamic entry points, the dense
// scan-buffer trick, and the two incremental affected-vertex strategies
// (delta-screening and frontier).
//
// What
//
//   - Options/Option: functional configuration shared by both flavors
//     (Repeat, Tolerance, MaxIterations, Seed, SelfLoops, StrictTiebreak).
//   - Result: the {Membership, Iterations, Time} triple every entry point
//     returns.
//   - Deletion/Insertion: the undirected, source-sorted edge-batch format.
//   - Scan: the (vcs, vcout) scratch pair behind every neighborhood scan.
//   - DeltaScreening/Frontier: the two affected-vertex strategies.
//
// Why
//
//   - copra and slpa differ in their labelset shape and choose kernel, but
//     share everything else. Factoring it here keeps the dense-scratch
//     trick and the affected-set logic written exactly once.
//
// See: copra and slpa for the two label-propagation flavors built on top
// of this package, and graphview for the graph capability set they read.
package cpra
