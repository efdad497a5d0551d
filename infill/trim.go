package infill

import "github.com/slicestack/chopper/model"

// Densities fixed per §4.8 for the always-100%/always-10% segment kinds.
const (
	TopBottomDensity = 100.0
	SupportDensity   = 10.0
)

// TrimLayer fills every infill-carrying segment on one layer's islands,
// alternating tilt direction by layer index (§4.8: "direction alternates
// per layer — even layers tilt one way, odd layers the other").
// sparseDensity is the user-configured Infill-segment density;
// Top/Bottom/Support always use their fixed density regardless.
func TrimLayer(islands []model.LayerIsland, layerIdx int, sparseDensity, nozzleWidth float64) {
	right := layerIdx%2 == 0

	for i := range islands {
		for s := range islands[i].Segments {
			seg := &islands[i].Segments[s]
			if !seg.Kind.IsInfillCarrying() {
				continue
			}

			goRight := right
			var density float64
			switch seg.Kind {
			case model.SegmentInfill:
				density = sparseDensity
			case model.SegmentTop, model.SegmentBottom:
				density = TopBottomDensity
			case model.SegmentSupport:
				density = SupportDensity
				goRight = false
			}

			divider := Divider(density, nozzleWidth)
			seg.FillLines = Fill(seg.Region, divider, goRight)
			seg.Density = density
		}
	}
}
