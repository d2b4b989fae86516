package copra

import (
	"sort"

	"github.com/katalvlaran/lvlath-cpra/cpra"
)

// ChooseCommunity reduces the candidates scanned into scan into u's next
// Labelset of capacity l:
//
//  1. Sort scan.Vcs by scan.Vcout descending.
//  2. Walk the sorted list, emitting entries unconditionally for the first
//     slot, then only while the candidate's weight is >= w; stop once the
//     labelset holds l entries or the next candidate falls below w.
//  3. Normalize emitted weights so they sum to 1.
//  4. If nothing was emitted (an isolated vertex, or every edge skipped),
//     fall back to the singleton {(u, 1)}.
//
// w is the threshold B*vtot[u] computed by the caller (B = 1/l).
func ChooseCommunity(scan *cpra.Scan, u int, l int, w float64) Labelset {
	sort.Slice(scan.Vcs, func(i, j int) bool {
		return scan.Vcout[scan.Vcs[i]] > scan.Vcout[scan.Vcs[j]]
	})

	out := make(Labelset, l)
	n := 0
	sum := 0.0
	for _, c := range scan.Vcs {
		if n >= l {
			break
		}
		weight := scan.Vcout[c]
		if n > 0 && weight < w {
			break
		}
		out[n] = Label{Community: c, Coef: weight}
		sum += weight
		n++
	}
	if n == 0 {
		out[0] = Label{Community: u, Coef: 1}
		return out
	}
	for i := 0; i < n; i++ {
		out[i].Coef /= sum
	}
	return out
}
