package island

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/mesh"
	"github.com/slicestack/chopper/model"
)

// Build runs a layer's full island-reconstruction pass (§4.3): chain
// segments via triangle adjacency, close the resulting open chains
// (gap-close then force-close), simplify each closed path, and union
// them through engine to recover hole/island nesting.
//
// Layers with fewer than two segments produce no islands — the source
// engine's own minimum for a chain to possibly close.
func Build(m *mesh.Mesh, segs []model.LayerSliceSegment, faceToSegmentIndex map[int]int, engine *geom2d.Engine) ([]model.LayerIsland, error) {
	if len(segs) < 2 {
		return nil, nil
	}

	closed, open := Chain(m, segs, faceToSegmentIndex)
	gapClosed, stillOpen := CloseGaps(open)
	forced := ForceClose(stillOpen)

	all := make(geom2d.PathSet, 0, len(closed)+len(gapClosed)+len(forced))
	all = append(all, closed...)
	all = append(all, gapClosed...)
	all = append(all, forced...)

	simplified := make(geom2d.PathSet, 0, len(all))
	for _, p := range all {
		simplified = append(simplified, Simplify(p))
	}

	tree, err := engine.UnionTree(simplified, geom2d.NonZero)
	if err != nil {
		return nil, err
	}

	return BuildIslandsFromTree(tree), nil
}
