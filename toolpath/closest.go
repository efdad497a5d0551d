package toolpath

import "github.com/slicestack/chopper/geom2d"

func sqDist(a, b geom2d.Point) int64 { return a.DistSq(b) }

// FindClosestPoint locates a point on path near lastPoint by bisecting
// the index range and stepping toward whichever end is closer — not an
// exact nearest-point scan. This reproduces the source engine's
// approximate search verbatim, tie-breaks and all, because downstream
// tool-path determinism is defined against this exact behaviour rather
// than true nearest-point (§4.9 design note, §9 open question).
func FindClosestPoint(path geom2d.Path, lastPoint geom2d.Point) (idx int, dist int64) {
	lowIdx := 0
	upIdx := len(path) - 1
	midIdx := 0

	for lowIdx != upIdx {
		midIdx = (lowIdx + upIdx) / 2
		if midIdx == lowIdx {
			if sqDist(lastPoint, path[upIdx]) < sqDist(lastPoint, path[lowIdx]) {
				midIdx = upIdx
			}
			break
		}

		if sqDist(lastPoint, path[lowIdx]) < sqDist(lastPoint, path[midIdx]) {
			upIdx = midIdx
		} else {
			lowIdx = midIdx
		}
	}

	return midIdx, sqDist(lastPoint, path[midIdx])
}
