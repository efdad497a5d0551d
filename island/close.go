package island

import (
	"math"

	"github.com/slicestack/chopper/geom2d"
)

// gapCloseThreshold is (0.05mm · Scale)², the squared distance under
// which two open-chain endpoints are treated as the same point (§4.3).
var gapCloseThreshold = sq(5000)

func sq(v int64) int64 { return v * v }

func sqDist(a, b geom2d.Point) int64 { return a.DistSq(b) }

// CloseGaps tries to fold each open chain into a closed loop by
// repeatedly prepending whichever remaining chain has the endpoint
// nearest the working chain's trailing end, stopping once front and
// back are within gapCloseThreshold of each other. Chains it cannot
// close this way are returned in stillOpen for ForceClose.
func CloseGaps(openPaths geom2d.PathSet) (closed, stillOpen geom2d.PathSet) {
	consumed := make([]bool, len(openPaths))

	for a := range openPaths {
		if consumed[a] || len(openPaths[a]) == 0 {
			continue
		}
		consumed[a] = true
		cur := openPaths[a].Clone()

		for sqDist(cur[0], cur[len(cur)-1]) > gapCloseThreshold {
			bestDiff := gapCloseThreshold * 3
			bestIdx := -1
			bestSwapped := false

			for b := a + 1; b < len(openPaths); b++ {
				if consumed[b] || len(openPaths[b]) == 0 {
					continue
				}
				test := openPaths[b]
				tail := cur[len(cur)-1]
				if d := sqDist(tail, test[0]); d < bestDiff {
					bestIdx, bestDiff, bestSwapped = b, d, false
				} else if d := sqDist(tail, test[len(test)-1]); d < bestDiff {
					bestIdx, bestDiff, bestSwapped = b, d, true
				}
			}

			if bestIdx == -1 {
				stillOpen = append(stillOpen, cur)
				cur = nil
				break
			}

			consumed[bestIdx] = true
			other := openPaths[bestIdx]
			if bestSwapped {
				other = other.Reversed()
			}
			cur = prepend(other, cur)
		}

		if cur != nil {
			closed = append(closed, cur)
		}
	}

	return closed, stillOpen
}

// ForceClose pairs up whatever chains CloseGaps couldn't join, always
// merging with whichever remaining chain is nearest regardless of
// distance, until none are left (§4.3's "finally pair up the chains
// that need to be forced close").
func ForceClose(chains geom2d.PathSet) geom2d.PathSet {
	var closed geom2d.PathSet
	consumed := make([]bool, len(chains))

	for a := range chains {
		if consumed[a] || len(chains[a]) == 0 {
			continue
		}
		consumed[a] = true
		cur := chains[a].Clone()

		for {
			tail := cur[len(cur)-1]
			bestDiff := int64(math.MaxInt64)
			bestIdx := -1
			bestSwapped := false

			for b := a + 1; b < len(chains); b++ {
				if consumed[b] || len(chains[b]) == 0 {
					continue
				}
				test := chains[b]
				if d := sqDist(tail, test[0]); d < bestDiff {
					bestIdx, bestDiff, bestSwapped = b, d, false
				} else if d := sqDist(tail, test[len(test)-1]); d < bestDiff {
					bestIdx, bestDiff, bestSwapped = b, d, true
				}
			}

			if bestIdx == -1 {
				break
			}

			consumed[bestIdx] = true
			other := chains[bestIdx]
			if bestSwapped {
				other = other.Reversed()
			}
			cur = prepend(other, cur)
		}

		closed = append(closed, cur)
	}

	return closed
}

func prepend(prefix, rest geom2d.Path) geom2d.Path {
	out := make(geom2d.Path, 0, len(prefix)+len(rest))
	out = append(out, prefix...)
	out = append(out, rest...)

	return out
}
