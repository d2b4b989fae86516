package copra

// BestCommunities reduces each vertex's final Labelset to its dominant
// community: slot 0's community id. A vertex key whose Labelset was
// never populated (not live in the graph) reports itself.
func BestCommunities(vcom []Labelset, span int) []int {
	out := make([]int, span)
	for u := 0; u < span; u++ {
		if vcom[u][0].Coef == 0 {
			out[u] = u
			continue
		}
		out[u] = vcom[u][0].Community
	}
	return out
}

// CountCommunities tallies, across every vertex's full Labelset (every
// slot with a non-zero coefficient, not just the dominant one), how many
// vertex-memberships each community holds, mirroring the original
// driver's community-size census pass, useful to callers wanting a size
// distribution without re-deriving it.
func CountCommunities(vcom []Labelset) (communities []int, counts []int) {
	tally := make(map[int]int)
	order := make([]int, 0)
	for _, ls := range vcom {
		for _, lbl := range ls {
			if lbl.Coef <= 0 {
				break
			}
			if tally[lbl.Community] == 0 {
				order = append(order, lbl.Community)
			}
			tally[lbl.Community]++
		}
	}
	counts = make([]int, len(order))
	for i, c := range order {
		counts[i] = tally[c]
	}
	return order, counts
}

// MinCommunityCount returns the smallest count among communities, or 0 if
// communities is empty. Grounded on the original's slpaMinCount.
func MinCommunityCount(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	min := counts[0]
	for _, c := range counts[1:] {
		if c < min {
			min = c
		}
	}
	return min
}
