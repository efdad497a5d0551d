package toolpath

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// Plan walks every layer of mesh in order, producing each layer's
// InitialTravels (the Z-raise move) and island tool-paths, then
// rewrites each layer's raise move to start from the previous layer's
// last point (§4.9 final step).
//
// Layers are planned one after another, each starting from the previous
// layer's last point, so consecutive layers already connect into one
// continuous path; the closing pass sets each raise move's start to
// that same point.
func Plan(mesh *model.MeshInfo, layerHeight float64, s Settings) {
	lastPoints := make([]geom2d.Point, len(mesh.Layers))

	for i := range mesh.Layers {
		layer := &mesh.Layers[i]
		z := (float64(i) + 0.5) * layerHeight * float64(geom2d.Scale)

		start := geom2d.Point{}
		if i > 0 {
			start = lastPoints[i-1]
		}

		layer.InitialTravels = []model.ToolSegment{{
			Kind: model.ToolTravel, P1: start, P2: start, Z: z, Speed: s.MoveSpeed,
		}}

		current := start
		if len(layer.SkirtSegments) > 0 {
			current = planSkirt(layer.SkirtSegments, current, z, s)
		}

		lastPoints[i] = PlanLayer(layer, current, z, s)
	}

	for i := 1; i < len(mesh.Layers); i++ {
		layer := &mesh.Layers[i]
		if len(layer.InitialTravels) == 0 {
			continue
		}
		layer.InitialTravels[0].P1 = lastPoints[i-1]
	}
}
