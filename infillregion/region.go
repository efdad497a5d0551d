package infillregion

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// Build appends an Infill LayerSegment to isle covering OutlinePaths
// minus the union of every non-Outline segment already on the island
// (§4.6). An island with nothing to subtract against yet gets the full
// boundary as its infill region.
func Build(isle *model.LayerIsland, infillSpeed float64, engine *geom2d.Engine) error {
	if len(isle.OutlinePaths) == 0 {
		return nil
	}

	var clip geom2d.PathSet
	for _, seg := range isle.Segments {
		if seg.Kind == model.SegmentOutline {
			continue
		}
		clip = append(clip, seg.Region...)
	}

	region := isle.OutlinePaths
	if len(clip) > 0 {
		diff, err := engine.Difference(isle.OutlinePaths, clip, geom2d.NonZero)
		if err != nil {
			return err
		}
		region = diff
	}

	if len(region) == 0 {
		return nil
	}

	isle.Segments = append(isle.Segments, model.LayerSegment{
		Kind:   model.SegmentInfill,
		Region: region,
		Speed:  infillSpeed,
	})

	return nil
}
