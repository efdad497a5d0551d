package skirt

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// Build generates skirtLineCount concentric priming rings around layer
// 0's geometry and stores them on layer.SkirtSegments (§4.7). A
// skirtLineCount of 0 or a layer with no islands produces nothing.
func Build(layer *model.LayerComponent, skirtLineCount int, skirtDistance, nozzleWidth, speed float64, engine *geom2d.Engine) error {
	if skirtLineCount <= 0 {
		return nil
	}

	var all geom2d.PathSet
	for _, isle := range layer.Islands {
		all = append(all, isle.OutlinePaths...)
	}
	if len(all) == 0 {
		return nil
	}

	union, err := engine.Union(all, geom2d.NonZero)
	if err != nil {
		return err
	}
	if len(union) == 0 {
		return nil
	}

	base, err := engine.Offset(union, int64(skirtDistance*float64(geom2d.Scale)))
	if err != nil {
		return err
	}
	if len(base) == 0 {
		return nil
	}

	nozzleScaled := int64(nozzleWidth * float64(geom2d.Scale))
	for j := 0; j < skirtLineCount; j++ {
		ring, err := engine.Offset(base, int64(j+1)*nozzleScaled)
		if err != nil {
			return err
		}
		if len(ring) == 0 {
			continue
		}

		layer.SkirtSegments = append(layer.SkirtSegments, model.LayerSegment{
			Kind:   model.SegmentSkirt,
			Region: ring,
			Speed:  speed,
		})
	}

	return nil
}
