package shell

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// Build insets isle's sliced outline into shellCount concentric Outline
// segments and replaces isle.OutlinePaths with the infill boundary
// (§4.4): the outermost shell sits nozzleWidth/2 inside the slice, each
// subsequent shell a further nozzleWidth in, and the boundary is one
// more nozzleWidth-deep inset than the innermost printed shell, offset
// back out by one nozzleWidth — landing back on the innermost shell's
// own centerline rather than outside it.
//
// An island whose shell offset degenerates to nothing (too thin to hold
// even one shell) contributes no segment for that ring and is skipped,
// per the geometric-degeneracy policy in §7.
func Build(isle *model.LayerIsland, nozzleWidth float64, shellCount int, speed float64, engine *geom2d.Engine) error {
	if len(isle.OutlinePaths) == 0 {
		return nil
	}

	w := int64(nozzleWidth * float64(geom2d.Scale))
	sliced := isle.OutlinePaths

	for j := 0; j < shellCount; j++ {
		delta := -(w/2 + int64(j)*w)
		offset, err := engine.Offset(sliced, delta)
		if err != nil {
			return err
		}
		if len(offset) == 0 {
			continue
		}

		isle.Segments = append(isle.Segments, model.LayerSegment{
			Kind:   model.SegmentOutline,
			Region: offset,
			Speed:  speed,
		})
	}

	nextInset, err := engine.Offset(sliced, -(w/2 + int64(shellCount)*w))
	if err != nil {
		return err
	}
	if len(nextInset) == 0 {
		return nil
	}

	boundary, err := engine.Offset(nextInset, w)
	if err != nil {
		return err
	}
	if len(boundary) > 0 {
		isle.OutlinePaths = boundary
	}

	return nil
}
