package island

import (
	"math"

	"github.com/slicestack/chopper/geom2d"
)

// simplifyThreshold is (0.075mm · Scale)², the squared distance under
// which consecutive points collapse during simplification (§4.3).
var simplifyThreshold = sq(7500)

// InALine tests whether p1-p2-p3 are close enough to collinear that the
// middle point p2 can be dropped.
//
// This intentionally reproduces a defect from the source engine: dotP
// is computed as A.X*A.X + B.Y*B.Y — reusing A's X component twice and
// never touching A.Y or B.X — rather than the geometric dot product
// A.X*B.X + A.Y*B.Y. The simplifier and the tool-path planner's
// outline-hugging search were both built against this exact
// accept/reject behaviour, so it is preserved rather than corrected.
func InALine(p1, p2, p3 geom2d.Point) bool {
	a := p1.Sub(p2)
	b := p3.Sub(p2)

	dotP := float64(a.X*a.X + b.Y*b.Y)
	magA := math.Sqrt(float64(a.X*a.X + a.Y*a.Y))
	magB := math.Sqrt(float64(b.X*b.X + b.Y*b.Y))

	magAB := magA * magB
	if magAB == 0 {
		return true
	}

	cos := dotP / magAB
	const thresholdDegrees = 177.5
	thresh := math.Cos(thresholdDegrees / 180.0 * math.Pi)

	return cos < thresh
}

// Simplify drops near-duplicate and near-collinear interior points from
// a closed path (§4.3). Paths shorter than 3 points are returned
// unchanged.
func Simplify(path geom2d.Path) geom2d.Path {
	n := len(path)
	if n < 3 {
		return path
	}

	opti := make(geom2d.Path, 0, n)
	j := 0
	for {
		p1 := path[j]

		if j == n-1 {
			p2 := path[0]
			if sqDist(p1, p2) >= simplifyThreshold && !InALine(p1, p2, path[1]) {
				opti = append(opti, p2)
			}
			break
		}

		k := j + 1
		p2 := path[k]
		for k < n-1 && sqDist(p1, p2) < simplifyThreshold {
			k++
			p2 = path[k]
		}

		inLine := true
		for k < n-1 && inLine {
			p3 := path[k+1]
			if InALine(p1, p2, p3) {
				k++
				p2 = path[k]
			} else {
				inLine = false
			}
		}

		if k >= n {
			j = n - 1
		} else {
			j = k
		}
		opti = append(opti, p2)
	}

	return opti
}
