package island

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// nestFromTree walks a union-tree recursively: each depth-0 child is an
// island's outer contour, each of its children is a hole belonging to
// that island, and each hole's own children are islands nested inside
// that hole, handled by recursing as if they were depth-0 again (§4.3).
func nestFromTree(node *geom2d.PolyNode, out *[]model.LayerIsland) {
	for _, child := range node.Children {
		isle := model.LayerIsland{OutlinePaths: geom2d.PathSet{child.Outline}}

		for _, hole := range child.Children {
			isle.OutlinePaths = append(isle.OutlinePaths, hole.Outline)
			nestFromTree(hole, out)
		}

		*out = append(*out, isle)
	}
}

// BuildIslandsFromTree converts a union-tree into the flat island list
// every later stage operates on.
func BuildIslandsFromTree(root *geom2d.PolyNode) []model.LayerIsland {
	var out []model.LayerIsland
	nestFromTree(root, &out)

	return out
}
