package slpa

import "sort"

// BestCommunities reduces each live vertex's final Ring to its majority
// label over the filled prefix ring[:lastFilled+1]; ties are broken by
// first occurrence in ascending community-id order. A vertex key that
// LiveSet did not mark reports itself.
func BestCommunities(vcom []Ring, lastFilled int, live []bool) []int {
	out := make([]int, len(vcom))
	for u, ring := range vcom {
		if !live[u] {
			out[u] = u
			continue
		}
		out[u] = majority(ring[:lastFilled+1])
	}
	return out
}

// majority returns the most frequent value in labels, ties broken by
// first occurrence in ascending order.
func majority(labels []int) int {
	sorted := append([]int(nil), labels...)
	sort.Ints(sorted)

	bestVal, bestCount := sorted[0], 0
	curVal, curCount := sorted[0], 0
	for _, v := range sorted {
		if v == curVal {
			curCount++
		} else {
			curVal = v
			curCount = 1
		}
		if curCount > bestCount {
			bestCount = curCount
			bestVal = curVal
		}
	}
	return bestVal
}

// CountCommunities tallies, across every live vertex's filled ring
// prefix, how many vertex-memberships each community holds, mirroring
// the original driver's community-size census pass, adapted here to
// SLPA's ring rather than COPRA's Labelset.
func CountCommunities(vcom []Ring, lastFilled int, live []bool) (communities []int, counts []int) {
	tally := make(map[int]int)
	order := make([]int, 0)
	for u, ring := range vcom {
		if !live[u] {
			continue
		}
		for _, c := range ring[:lastFilled+1] {
			if tally[c] == 0 {
				order = append(order, c)
			}
			tally[c]++
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
