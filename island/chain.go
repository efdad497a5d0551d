package island

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/mesh"
	"github.com/slicestack/chopper/model"
)

// Chain links a layer's slice segments into paths by walking triangle
// adjacency (§4.3): from the triangle that produced the current chain
// end, look at every triangle sharing one of its three vertices; if one
// of those triangles produced an unused segment with an endpoint at the
// current chain end, fold it in and continue. A chain that returns to
// its own start is closed; one that runs out of candidates is open.
//
// Chain mutates segs in place (UsedInPolygon, and endpoint order when a
// segment is walked back-to-front) — the same one-way consumption model
// as the source engine.
func Chain(m *mesh.Mesh, segs []model.LayerSliceSegment, faceToSegmentIndex map[int]int) (closed, open geom2d.PathSet) {
	for startIdx := range segs {
		if segs[startIdx].UsedInPolygon {
			continue
		}
		segs[startIdx].UsedInPolygon = true

		startP1 := segs[startIdx].P1
		startP2 := segs[startIdx].P2
		path := geom2d.Path{startP1, startP2}
		pointToConnectTo := startP2
		lineIdxToConnectFrom := startIdx
		isOpen := true

		for {
			connected := false
			tri := m.Triangles[segs[lineIdxToConnectFrom].TriangleID]

			for _, v := range tri.V {
				for _, touchIdx := range m.Adjacency[v] {
					touchLineIdx, ok := faceToSegmentIndex[touchIdx]
					if !ok {
						continue
					}
					if touchLineIdx == lineIdxToConnectFrom {
						continue
					}
					touchLine := &segs[touchLineIdx]
					if touchLine.UsedInPolygon {
						continue
					}

					switch {
					case pointToConnectTo.Equal(touchLine.P1):
						connected = true
					case pointToConnectTo.Equal(touchLine.P2):
						touchLine.P1, touchLine.P2 = touchLine.P2, touchLine.P1
						connected = true
					}

					if connected {
						touchLine.UsedInPolygon = true
						if touchLine.P2.Equal(startP1) {
							isOpen = false
						} else {
							path = append(path, touchLine.P2)
							pointToConnectTo = touchLine.P2
							lineIdxToConnectFrom = touchLineIdx
						}
						break
					}
				}
				if connected {
					break
				}
			}

			if !connected || !isOpen {
				break
			}
		}

		if isOpen {
			if len(path) > 0 {
				open = append(open, path)
			}
		} else {
			closed = append(closed, path)
		}
	}

	return closed, open
}
