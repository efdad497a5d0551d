package sliceplane

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/mesh"
	"github.com/slicestack/chopper/model"
)

// SliceLayer intersects every triangle of m against the horizontal plane
// z = zPoint, returning one LayerSliceSegment per contributing triangle
// and the triangle→segment-index map §3 calls faceToSegmentIndex.
//
// A triangle contributes at most one segment: coplanar triangles
// (minZ == maxZ) are skipped, as are triangles whose interpolated
// endpoints land on the same fixed-point coordinate (zero-length
// degenerate intersection, §7).
func SliceLayer(m *mesh.Mesh, zPoint float64) ([]model.LayerSliceSegment, map[int]int) {
	segments := make([]model.LayerSliceSegment, 0, 32)
	faceToSegmentIndex := make(map[int]int)

	for j, tri := range m.Triangles {
		var x, y, z [3]float64
		for k, vi := range tri.V {
			v := m.Vertices[vi]
			x[k], y[k], z[k] = v.X, v.Y, v.Z
		}

		minZ, maxZ := z[0], z[0]
		for _, zc := range z[1:] {
			if zc < minZ {
				minZ = zc
			}
			if zc > maxZ {
				maxZ = zc
			}
		}
		if minZ == maxZ || zPoint < minZ || zPoint > maxZ {
			continue
		}

		a, b, c := classifyApex(zPoint, z)

		zToX1 := ratio(x[a]-x[b], z[a]-z[b])
		zToY1 := ratio(y[a]-y[b], z[a]-z[b])
		zToX2 := ratio(x[a]-x[c], z[a]-z[c])
		zToY2 := ratio(y[a]-y[c], z[a]-z[c])

		zRise1 := zPoint - z[b]
		zRise2 := zPoint - z[c]

		p1 := geom2d.Point{
			X: int64((x[b] + zToX1*zRise1) * float64(geom2d.Scale)),
			Y: int64((y[b] + zToY1*zRise1) * float64(geom2d.Scale)),
		}
		p2 := geom2d.Point{
			X: int64((x[c] + zToX2*zRise2) * float64(geom2d.Scale)),
			Y: int64((y[c] + zToY2*zRise2) * float64(geom2d.Scale)),
		}
		if p1.Equal(p2) {
			continue
		}

		faceToSegmentIndex[j] = len(segments)
		segments = append(segments, model.LayerSliceSegment{
			P1:         p1,
			P2:         p2,
			TriangleID: j,
		})
	}

	return segments, faceToSegmentIndex
}

// ratio divides num/den, returning 0 when den is 0 (two vertices share a
// z-coordinate, so that edge contributes no x/y slope).
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// classifyApex picks which vertex (a) is the one whose two edges both
// cross zPoint, and assigns the other two to b and c — following the
// case ordering of the original per-vertex z-vs-zPoint comparison. When
// exactly one vertex lies on the plane and the other two straddle it,
// the apex is a straddling vertex instead, so the segment runs from the
// on-plane vertex to the crossing point on the opposite edge.
func classifyApex(zPoint float64, z [3]float64) (a, b, c int) {
	switch {
	case zPoint == z[0] && zPoint == z[1]:
		return 2, 0, 1
	case zPoint == z[0] && zPoint == z[2]:
		return 1, 2, 0
	case zPoint == z[1] && zPoint == z[2]:
		return 0, 1, 2
	}

	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		if zPoint == z[i] && (z[j]-zPoint)*(z[k]-zPoint) < 0 {
			return j, k, i
		}
	}

	between := func(p, q float64) bool {
		return (zPoint <= p && zPoint >= q) || (zPoint >= p && zPoint <= q)
	}
	oneTwo := between(z[0], z[1])
	oneThree := between(z[0], z[2])
	twoThree := between(z[1], z[2])

	switch {
	case oneTwo && oneThree:
		return 0, 1, 2
	case oneTwo && twoThree:
		return 1, 2, 0
	default:
		return 2, 0, 1
	}
}
