package toolpath

import (
	"math"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// Settings carries the configuration planning needs from the caller,
// kept separate from config.Profile so this package has no import-time
// dependency on it.
type Settings struct {
	MoveSpeed          float64
	RetractionSpeed    float64
	RetractionDistance float64
}

// selectNearestIsland finds the not-yet-visited island whose first
// Outline segment's first path has a point closest to lastPoint
// (§4.9 step 2). An island whose first segment has no region at all is
// permanently skipped, matching the source engine's behaviour for that
// degenerate case.
func selectNearestIsland(islands []model.LayerIsland, used []bool, lastPoint geom2d.Point) (isleIdx, pointIdx int) {
	isleIdx = -1
	closestDist := int64(math.MaxInt64)

	for j := range islands {
		if used[j] {
			continue
		}
		if len(islands[j].Segments) == 0 || len(islands[j].Segments[0].Region) == 0 {
			used[j] = true
			continue
		}

		path := islands[j].Segments[0].Region[0]
		idx, dist := FindClosestPoint(path, lastPoint)
		if dist < closestDist {
			closestDist = dist
			isleIdx = j
			pointIdx = idx
		}
	}

	return isleIdx, pointIdx
}

func hasRemaining(used []bool) bool {
	for _, u := range used {
		if !u {
			return true
		}
	}
	return false
}

// PlanLayer builds the ToolSegment stream for every island on one layer,
// visiting islands nearest-first, and returns the tool-head's final
// position (§4.9).
func PlanLayer(layer *model.LayerComponent, startPoint geom2d.Point, z float64, s Settings) geom2d.Point {
	lastPoint := startPoint
	used := make([]bool, len(layer.Islands))

	for hasRemaining(used) {
		isleIdx, pointIdx := selectNearestIsland(layer.Islands, used, lastPoint)
		if isleIdx == -1 {
			continue
		}
		used[isleIdx] = true
		planIsland(&layer.Islands[isleIdx], pointIdx, &lastPoint, z, s)
	}

	return lastPoint
}

func planIsland(isle *model.LayerIsland, nearestPointIdx int, lastPoint *geom2d.Point, z float64, s Settings) {
	firstSeg := true

	for i := range isle.Segments {
		seg := &isle.Segments[i]
		if len(seg.Region) == 0 {
			continue
		}

		if seg.Kind.IsInfillCarrying() {
			planInfillSegment(seg, lastPoint, z, s)
			continue
		}

		for _, path := range seg.Region {
			if len(path) < 3 {
				continue
			}

			var closIdx int
			if firstSeg {
				closIdx = nearestPointIdx
				firstSeg = false
			} else {
				closIdx, _ = FindClosestPoint(path, *lastPoint)
			}

			walkClosedRing(seg, path, closIdx, lastPoint, z, s)
		}
	}
}

// walkClosedRing appends a retract-guarded Travel from *lastPoint to
// path[startIdx], then extrudes the full closed ring starting there and
// wrapping back around to it, advancing *lastPoint to path[startIdx].
// §4.7's skirt ring and §4.9's outline walk share this exact shape.
func walkClosedRing(seg *model.LayerSegment, path geom2d.Path, startIdx int, lastPoint *geom2d.Point, z float64, s Settings) {
	addRetractedMove(seg, *lastPoint, path[startIdx], s.MoveSpeed, z, s.RetractionSpeed, s.RetractionDistance)

	n := len(path)
	for k := startIdx; k < n-1; k++ {
		appendExtrude(seg, path[k], path[k+1], z, seg.Speed)
	}
	appendExtrude(seg, path[n-1], path[0], z, seg.Speed)
	for k := 0; k < startIdx; k++ {
		appendExtrude(seg, path[k], path[k+1], z, seg.Speed)
	}

	*lastPoint = path[startIdx]
}

// planSkirt walks each priming ring in build order (innermost first,
// matching skirt.Build's append order), returning the tool-head's
// resulting position (§4.7).
func planSkirt(rings []model.LayerSegment, lastPoint geom2d.Point, z float64, s Settings) geom2d.Point {
	for i := range rings {
		seg := &rings[i]
		for _, path := range seg.Region {
			if len(path) < 3 {
				continue
			}

			startIdx, _ := FindClosestPoint(path, lastPoint)
			walkClosedRing(seg, path, startIdx, &lastPoint, z, s)
		}
	}

	return lastPoint
}

func planInfillSegment(seg *model.LayerSegment, lastPoint *geom2d.Point, z float64, s Settings) {
	if len(seg.FillLines) == 0 {
		return
	}

	closIdx := 0
	closestDist := int64(math.MaxInt64)
	swapped := false
	for k, line := range seg.FillLines {
		if d := sqDist(*lastPoint, line.P1); d < closestDist {
			closestDist, closIdx, swapped = d, k, false
		}
		if d := sqDist(*lastPoint, line.P2); d < closestDist {
			closestDist, closIdx, swapped = d, k, true
		}
	}
	if swapped {
		seg.FillLines[closIdx].P1, seg.FillLines[closIdx].P2 = seg.FillLines[closIdx].P2, seg.FillLines[closIdx].P1
	}

	addRetractedMove(seg, *lastPoint, seg.FillLines[closIdx].P1, s.MoveSpeed, z, s.RetractionSpeed, s.RetractionDistance)

	firstLine := true
	for k := closIdx; k < len(seg.FillLines); k++ {
		extrudeLine(seg, k, lastPoint, z, s.MoveSpeed, &firstLine)
	}
	for k := 0; k < closIdx; k++ {
		extrudeLine(seg, k, lastPoint, z, s.MoveSpeed, &firstLine)
	}
}
