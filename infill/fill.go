package infill

import (
	"math"
	"sort"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// xOnAxis projects p onto the tilt axis: x−y for the "right" direction,
// x+y for the other.
func xOnAxis(p geom2d.Point, right bool) int64 {
	if right {
		return p.X - p.Y
	}
	return p.X + p.Y
}

// clockwise reports whether the turn A→B→C is clockwise.
func clockwise(a, b, c geom2d.Point) bool {
	v1 := a.Sub(b)
	v2 := c.Sub(b)
	return v1.Y*v2.X < v1.X*v2.Y
}

// cornerPoint returns the point on the 45° fill line through pivot that
// lies level with from: the same x offset from pivot as from, or the
// same y offset when from is directly above or below pivot. It is used
// to probe which side of a corner the fill line actually exits on.
func cornerPoint(from, pivot geom2d.Point, right bool) geom2d.Point {
	v := from.Sub(pivot)
	var out geom2d.Point
	if v.X == 0 {
		delta := v.Y
		out.Y = pivot.Y + delta
		if right {
			out.X = pivot.X + delta
		} else {
			out.X = pivot.X - delta
		}
	} else {
		delta := v.X
		out.X = pivot.X + delta
		if right {
			out.Y = pivot.Y + delta
		} else {
			out.Y = pivot.Y - delta
		}
	}

	return out
}

// Fill generates 45° parallel fill lines across outlines, tilted along
// the x−y axis when right is true and x+y otherwise, spaced by divider
// (§4.8). Paths with fewer than 3 points are skipped (degenerate).
func Fill(outlines geom2d.PathSet, divider int64, right bool) []model.FillLine {
	sectMap := make(map[int64][]geom2d.Point)
	var axisIdxSeen []int64
	seen := make(map[int64]bool)

	for _, path := range outlines {
		n := len(path)
		if n < 3 {
			continue
		}

		for i := 0; i < n; i++ {
			p1 := path[i]
			var p2 geom2d.Point
			if i < n-1 {
				p2 = path[i+1]
			} else {
				p2 = path[0]
			}

			leftMost := float64(xOnAxis(p1, right))
			rightMost := float64(xOnAxis(p2, right))
			var leftP, rightP geom2d.Point
			swapped := false
			if rightMost < leftMost {
				leftMost, rightMost = rightMost, leftMost
				leftP, rightP = p2, p1
				swapped = true
			} else {
				leftP, rightP = p1, p2
			}

			xDist := rightMost - leftMost
			if xDist == 0 {
				continue
			}

			leftIdx := int64(math.Ceil(leftMost / float64(divider)))
			rightIdx := int64(math.Floor(rightMost / float64(divider)))

			yRise := float64(rightP.Y - leftP.Y)
			xRise := float64(rightP.X - leftP.X)

			for idx := leftIdx; idx <= rightIdx; idx++ {
				xDiff := float64(idx)*float64(divider) - leftMost
				xPerc := xDiff / xDist

				switch {
				case !swapped && xPerc == 0.0, swapped && xPerc == 1.0:
					continue
				case swapped && xPerc == 0.0, !swapped && xPerc == 1.0:
					var p3 geom2d.Point
					switch {
					case i < n-2:
						p3 = path[i+2]
					case i < n-1:
						p3 = path[0]
					default:
						p3 = path[1]
					}

					pA := cornerPoint(p1, p2, right)
					clockV1ToV2 := clockwise(p2, p1, p3)
					if clockwise(p2, p1, pA) != clockV1ToV2 {
						continue
					}

					pA = cornerPoint(p3, p2, right)
					if clockwise(p2, p3, pA) == clockV1ToV2 {
						continue
					}
				}

				xVal := leftP.X + int64(xPerc*xRise)
				yVal := leftP.Y + int64(xPerc*yRise)
				pt := geom2d.Point{X: xVal, Y: yVal}

				if !seen[idx] {
					seen[idx] = true
					axisIdxSeen = append(axisIdxSeen, idx)
				}
				sectMap[idx] = append(sectMap[idx], pt)
			}
		}
	}

	sort.Slice(axisIdxSeen, func(i, j int) bool { return axisIdxSeen[i] < axisIdxSeen[j] })

	var lines []model.FillLine
	higherLines := make(map[int][]model.FillLine)
	var higherKeysSeen []int
	higherSeen := make(map[int]bool)

	for _, idx := range axisIdxSeen {
		points := sectMap[idx]
		if len(points) < 2 {
			continue
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Y < points[j].Y })

		lines = append(lines, model.FillLine{P1: points[0], P2: points[1]})

		for i := 2; i < len(points)-1; i += 2 {
			if !higherSeen[i] {
				higherSeen[i] = true
				higherKeysSeen = append(higherKeysSeen, i)
			}
			higherLines[i] = append(higherLines[i], model.FillLine{P1: points[i], P2: points[i+1]})
		}
	}

	sort.Ints(higherKeysSeen)

	rightToLeft := true
	for _, key := range higherKeysSeen {
		rowLines := higherLines[key]
		if rightToLeft {
			for i := len(rowLines) - 1; i >= 0; i-- {
				lines = append(lines, rowLines[i])
			}
		} else {
			lines = append(lines, rowLines...)
		}
		rightToLeft = !rightToLeft
	}

	return lines
}
