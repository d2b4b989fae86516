package cpra

import "github.com/katalvlaran/lvlath-cpra/graphview"

// InsertionChooser scans the edges in group (all sharing source u) and
// reports the community u would adopt, after internally skipping any edge
// whose endpoints already share a community (mirroring the original
// delta-screening scan, which only accumulates weight from cross-community
// insertions). copra and slpa each supply their own implementation, since
// the choose kernel differs between the two flavors.
type InsertionChooser func(u int, group []Insertion) int

// DeltaScreening computes the affected-vertex flags using the
// delta-screening strategy: deletions within a community mark that
// vertex, its neighbors, and the community; insertion groups that would
// move a vertex to a new community do the same; then neighbors/communities
// propagate to a final vertices flag set.
//
// deletions and insertions must both be undirected (each edge appears as
// both (u,v) and (v,u)) and sorted by source ascending; duplicate sources
// within insertions are handled by grouping.
func DeltaScreening(g graphview.Graph, deletions []Deletion, insertions []Insertion, communityOf func(u int) int, choose InsertionChooser) []bool {
	span := g.Span()
	vertices := make([]bool, span)
	neighbors := make([]bool, span)
	communities := make([]bool, span)

	for _, d := range deletions {
		cu := communityOf(d.U)
		cv := communityOf(d.V)
		if cu != cv {
			continue
		}
		vertices[d.U] = true
		neighbors[d.U] = true
		communities[cv] = true
	}

	i := 0
	for i < len(insertions) {
		u := insertions[i].U
		j := i
		for j < len(insertions) && insertions[j].U == u {
			j++
		}
		group := insertions[i:j]
		i = j

		cu := communityOf(u)
		cl := choose(u, group)
		if cl == cu {
			continue
		}
		vertices[u] = true
		neighbors[u] = true
		communities[cl] = true
	}

	g.ForEachVertexKey(func(u int) {
		cu := communityOf(u)
		if neighbors[u] {
			g.ForEachEdgeKey(u, func(v int) { vertices[v] = true })
		}
		if communities[cu] {
			vertices[u] = true
		}
	})

	return vertices
}

// Frontier computes the affected-vertex flags using the coarser frontier
// strategy: every deletion within a community marks its source, and
// every insertion across communities marks its source. The set then grows
// during iteration via the ChangedFunc hook (onChanged), not here.
func Frontier(deletions []Deletion, insertions []Insertion, communityOf func(u int) int, span int) []bool {
	vertices := make([]bool, span)
	for _, d := range deletions {
		if communityOf(d.U) == communityOf(d.V) {
			vertices[d.U] = true
		}
	}
	for _, ins := range insertions {
		if communityOf(ins.U) != communityOf(ins.V) {
			vertices[ins.U] = true
		}
	}
	return vertices
}

// FrontierChangedHook returns the ChangedFunc to pass to the iteration
// driver alongside a Frontier-derived vertices vector: whenever u changes
// label, every out-neighbor of u is added to the affected set.
func FrontierChangedHook(g graphview.Graph, vertices []bool) ChangedFunc {
	return func(u int) {
		g.ForEachEdgeKey(u, func(v int) { vertices[v] = true })
	}
}
