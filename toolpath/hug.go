package toolpath

import (
	"math"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/island"
	"github.com/slicestack/chopper/model"
)

// extrudeLine emits the travel (if any) and extrusion for one fill line
// of an infill-carrying segment, then advances lastPoint to its far
// endpoint (§4.9 step 3, "Infill-carrying").
//
// Every line after the first needs a bridging travel from the previous
// line's end back onto this segment's own outline: find which two
// adjacent outline vertices lastPoint sits between (the InALine test),
// then search outward along the outline in both directions for a
// vertex pair bracketing the next line's start, taking whichever
// direction needs fewer steps.
func extrudeLine(seg *model.LayerSegment, lineIdx int, lastPoint *geom2d.Point, z, moveSpeed float64, firstLine *bool) {
	line := &seg.FillLines[lineIdx]

	if *firstLine {
		*firstLine = false
	} else {
		if sqDist(*lastPoint, line.P2) < sqDist(*lastPoint, line.P1) {
			line.P1, line.P2 = line.P2, line.P1
		}

		hugToLine(seg, *lastPoint, line.P1, z, moveSpeed)
	}

	appendExtrude(seg, line.P1, line.P2, z, seg.Speed)
	*lastPoint = line.P2
}

// hugToLine travels from lastPoint to target along seg's own outline.
func hugToLine(seg *model.LayerSegment, lastPoint, target geom2d.Point, z, moveSpeed float64) {
	interPath, interIdx, pA, pB, found := findBracket(seg.Region, lastPoint)
	if !found {
		pA = interPath[interIdx]
		if interIdx == len(interPath)-1 {
			pB = interPath[0]
		} else {
			pB = interPath[interIdx+1]
		}
	}

	if island.InALine(pA, target, pB) {
		appendTravel(seg, lastPoint, target, z, moveSpeed)
		return
	}

	fullSize := len(interPath)
	halfSize := fullSize/2 + 1
	noInter := true
	forwards := true
	step := 2
	closestDist := int64(math.MaxInt64)
	closestStep := 2
	closestForwards := true

	for noInter && step < halfSize {
		aIdx, bIdx := wrapPair(interIdx+step, interIdx+step+1, fullSize)
		a, b := interPath[aIdx], interPath[bIdx]
		if island.InALine(a, target, b) {
			noInter = false
			break
		}
		if d := sqDist(target, a); d < closestDist {
			closestDist, closestStep, closestForwards = d, step, true
		}

		aIdx, bIdx = wrapPairNeg(interIdx-step+2, interIdx-step+1, fullSize)
		a, b = interPath[aIdx], interPath[bIdx]
		if island.InALine(a, target, b) {
			noInter = false
			forwards = false
			break
		}
		if d := sqDist(target, a); d < closestDist {
			closestDist, closestStep, closestForwards = d, step, false
		}
		step++
	}

	if noInter {
		step = closestStep
		forwards = closestForwards
	}

	if forwards {
		idxB := interIdx + 1
		if idxB == fullSize {
			idxB = 0
		}
		appendTravel(seg, lastPoint, interPath[idxB], z, moveSpeed)

		for k := interIdx + 1; k < interIdx+step; k++ {
			idxA, nb := wrapPair(k, k+1, fullSize)
			appendTravel(seg, interPath[idxA], interPath[nb], z, moveSpeed)
			idxB = nb
		}
		appendTravel(seg, interPath[idxB], target, z, moveSpeed)
	} else {
		idxB := interIdx
		appendTravel(seg, lastPoint, interPath[idxB], z, moveSpeed)

		for k := interIdx; k > interIdx-step+2; k-- {
			idxA, nb := wrapPairNeg(k, k-1, fullSize)
			appendTravel(seg, interPath[idxA], interPath[nb], z, moveSpeed)
			idxB = nb
		}
		appendTravel(seg, interPath[idxB], target, z, moveSpeed)
	}
}

// findBracket locates the outline edge lastPoint is collinear with. On a
// miss it leaves path/idx at whichever edge the scan last visited,
// matching the source engine's stale-last-edge fallback rather than
// recomputing a nearest-vertex edge (§9: preserved, not "improved",
// behaviour).
func findBracket(region geom2d.PathSet, lastPoint geom2d.Point) (path geom2d.Path, idx int, pA, pB geom2d.Point, found bool) {
	for _, p := range region {
		for i := range p {
			a := p[i]
			var b geom2d.Point
			if i == len(p)-1 {
				b = p[0]
			} else {
				b = p[i+1]
			}
			if island.InALine(a, lastPoint, b) {
				return p, i, a, b, true
			}
			path, idx = p, i
		}
	}

	return path, idx, geom2d.Point{}, geom2d.Point{}, false
}

func wrapPair(a, b, size int) (int, int) {
	if a >= size {
		a -= size
		b -= size
	} else if b >= size {
		b -= size
	}
	return a, b
}

func wrapPairNeg(a, b, size int) (int, int) {
	if a < 0 {
		a += size
		b += size
	} else if b < 0 {
		b += size
	}
	return a, b
}
