package mesh

import "math"

// NewMesh builds an indexed, immutable Mesh from raw triangle-soup data:
// rawVerts is one xyz tuple per triangle corner (as a typical STL reader
// would hand off, with no sharing between triangles), and rawTris gives,
// for each triangle, the three indices into rawVerts that make up its
// corners.
//
// Construction welds geometrically-coincident vertices by exact
// equality on their 3-tuples (§4.1 — no epsilon; STL readers already
// quantize to float32 precision, so bit-identical corners are the
// intended weld criterion), builds the vertex→triangle adjacency, and
// computes the bounding box. Every triangle vertex index in rawTris
// must be within range of rawVerts, or NewMesh returns
// ErrVertexIndexOutOfRange (fatal per §7).
func NewMesh(rawVerts []Vec3, rawTris [][3]int) (*Mesh, error) {
	if len(rawTris) == 0 {
		return nil, ErrNoTriangles
	}

	weldIndex := make(map[Vec3]int, len(rawVerts))
	welded := make([]Vec3, 0, len(rawVerts))

	weld := func(raw int) (int, error) {
		if raw < 0 || raw >= len(rawVerts) {
			return 0, outOfRangeErr(-1, raw, len(rawVerts))
		}
		v := rawVerts[raw]
		if idx, ok := weldIndex[v]; ok {
			return idx, nil
		}
		idx := len(welded)
		welded = append(welded, v)
		weldIndex[v] = idx

		return idx, nil
	}

	tris := make([]Triangle, len(rawTris))
	for i, rt := range rawTris {
		var tri Triangle
		for j, raw := range rt {
			idx, err := weld(raw)
			if err != nil {
				return nil, outOfRangeErr(i, raw, len(rawVerts))
			}
			tri.V[j] = idx
		}
		tris[i] = tri
	}

	adjacency := make([][]int, len(welded))
	for ti, tri := range tris {
		for _, v := range tri.V {
			adjacency[v] = append(adjacency[v], ti)
		}
	}

	bounds := AABB{
		Min: Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, v := range welded {
		bounds.Min.X = math.Min(bounds.Min.X, v.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, v.Y)
		bounds.Min.Z = math.Min(bounds.Min.Z, v.Z)
		bounds.Max.X = math.Max(bounds.Max.X, v.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, v.Y)
		bounds.Max.Z = math.Max(bounds.Max.Z, v.Z)
	}

	return &Mesh{
		Vertices:  welded,
		Triangles: tris,
		Adjacency: adjacency,
		Bounds:    bounds,
	}, nil
}
