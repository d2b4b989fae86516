package slpa

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-cpra/cpra"
)

// ChooseListener reduces the candidates scanned into scan to a single
// label for u, the listener's argmax over total proposed weight:
//
//   - If scan.Vcs is empty (an isolated vertex, or every edge skipped), u
//     itself is returned.
//   - Otherwise the candidate with the largest scan.Vcout entry wins. Ties
//     are broken by, in priority order: randomTiebreak (if non-nil, a coin
//     flip decides whether the incumbent is replaced); else, unless strict
//     is set, the legacy deterministic parity rule (replace the incumbent
//     when the challenger's community id has bit 1 set; this is the
//     default, see DESIGN.md); else (strict with no randomTiebreak) the
//     incumbent is never replaced, so the first candidate scanned wins.
//
// Static and the two dynamic entry points always pass a nil randomTiebreak.
func ChooseListener(scan *cpra.Scan, u int, strict bool, randomTiebreak *rand.Rand) int {
	if len(scan.Vcs) == 0 {
		return u
	}

	cmax := scan.Vcs[0]
	wmax := scan.Vcout[cmax]
	for _, c := range scan.Vcs[1:] {
		w := scan.Vcout[c]
		switch {
		case w > wmax:
			wmax = w
			cmax = c
		case w == wmax:
			switch {
			case randomTiebreak != nil:
				if randomTiebreak.Intn(2) == 1 {
					cmax = c
				}
			case !strict && c&2 != 0:
				cmax = c
			}
		}
	}
	return cmax
}
