package toolpath

import (
	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// retractMinDistSq is (10mm · Scale)², the travel distance beyond which
// a retraction is worth the pause (§4.9).
var retractMinDistSq = int64(10) * int64(geom2d.Scale) * int64(10) * int64(geom2d.Scale)

// addRetractedMove appends a Travel from p1 to p2, preceded by a
// Retract when the travel is long enough and retraction is configured
// (both speed and distance positive, §4.9's retract policy / §7).
func addRetractedMove(seg *model.LayerSegment, p1, p2 geom2d.Point, moveSpeed, z, retractSpeed, retractDistance float64) {
	if retractSpeed > 0 && retractDistance > 0 && sqDist(p1, p2) > retractMinDistSq {
		seg.ToolSegments = append(seg.ToolSegments, model.ToolSegment{
			Kind:            model.ToolRetract,
			RetractDistance: retractDistance,
			Speed:           retractSpeed,
		})
	}

	seg.ToolSegments = append(seg.ToolSegments, model.ToolSegment{
		Kind: model.ToolTravel, P1: p1, P2: p2, Z: z, Speed: moveSpeed,
	})
}

func appendTravel(seg *model.LayerSegment, p1, p2 geom2d.Point, z, speed float64) {
	seg.ToolSegments = append(seg.ToolSegments, model.ToolSegment{
		Kind: model.ToolTravel, P1: p1, P2: p2, Z: z, Speed: speed,
	})
}

func appendExtrude(seg *model.LayerSegment, p1, p2 geom2d.Point, z, speed float64) {
	seg.ToolSegments = append(seg.ToolSegments, model.ToolSegment{
		Kind: model.ToolExtrude, P1: p1, P2: p2, Z: z, Speed: speed,
	})
}
