// Package lvlathcpra is a label-propagation toolkit for overlapping
// community detection over weighted undirected graphs.
//
// What it provides
//
//	Two engines sharing one set of scratch buffers and iteration plumbing:
//
//	  • copra — COPRA: each vertex keeps a bounded labelset of
//	    (community, belonging coefficient) pairs, so a vertex straddling
//	    two clusters can be reported as belonging to both.
//	  • slpa  — SLPA: each vertex keeps a bounded ring of past labels and
//	    a speaker/listener pass settles on the majority label.
//
// Everything is organized under these packages:
//
//	cpra/       — shared Options, Result, scratch buffers, and the
//	              delta-screening/frontier affected-set computation used
//	              by both dynamic-update entry points
//	copra/      — the COPRA engine: scan, choose, iterate, best-community
//	slpa/       — the SLPA engine: speaker draw, listener choose, iterate
//	graphview/  — the read-only adjacency view both engines consume, plus
//	              a dense reference implementation and a core.Graph adapter
//	core/       — the underlying Graph, Vertex, Edge types and thread-safe
//	              primitives that graphview.FromCore adapts
//	builder/    — functional-options graph construction (Cycle, Path,
//	              Star, Wheel, Complete, Grid, RandomSparse), used by the
//	              bench driver's demo mode
//	cmd/cpra-bench/ — a driver that loads a Matrix Market graph (or builds
//	              a demo one) and sweeps both engines across label-count
//	              and tolerance settings
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges; copra.Static
//	and slpa.Static both report it as a single community.
//
//	go get github.com/katalvlaran/lvlath-cpra
package lvlathcpra
