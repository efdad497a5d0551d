package toolpath

import (
	"testing"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

func square(lo, hi int64) geom2d.Path {
	return geom2d.Path{
		{X: lo, Y: lo},
		{X: hi, Y: lo},
		{X: hi, Y: hi},
		{X: lo, Y: hi},
	}
}

func TestFindClosestPointExactCorner(t *testing.T) {
	path := square(0, 10*geom2d.Scale)

	idx, dist := FindClosestPoint(path, geom2d.Point{X: 10 * geom2d.Scale, Y: 10 * geom2d.Scale})
	if dist != 0 {
		t.Fatalf("expected exact match at a corner, got dist %d (idx %d)", dist, idx)
	}
	if path[idx].X != 10*geom2d.Scale || path[idx].Y != 10*geom2d.Scale {
		t.Fatalf("expected corner (10,10), got %+v", path[idx])
	}
}

func TestAddRetractedMoveSkipsRetractBelowThreshold(t *testing.T) {
	seg := &model.LayerSegment{}
	addRetractedMove(seg, geom2d.Point{}, geom2d.Point{X: geom2d.Scale}, 50, 0, 30, 1.5)

	if len(seg.ToolSegments) != 1 {
		t.Fatalf("expected only a travel for a short move, got %d tool segments", len(seg.ToolSegments))
	}
	if seg.ToolSegments[0].Kind != model.ToolTravel {
		t.Fatalf("expected Travel, got %v", seg.ToolSegments[0].Kind)
	}
}

func TestAddRetractedMoveRetractsBeyondThreshold(t *testing.T) {
	seg := &model.LayerSegment{}
	addRetractedMove(seg, geom2d.Point{}, geom2d.Point{X: 20 * geom2d.Scale}, 50, 0, 30, 1.5)

	if len(seg.ToolSegments) != 2 {
		t.Fatalf("expected retract+travel for a long move, got %d tool segments", len(seg.ToolSegments))
	}
	if seg.ToolSegments[0].Kind != model.ToolRetract {
		t.Fatalf("expected Retract first, got %v", seg.ToolSegments[0].Kind)
	}
	if seg.ToolSegments[0].RetractDistance != 1.5 {
		t.Fatalf("expected retract distance 1.5, got %v", seg.ToolSegments[0].RetractDistance)
	}
	if seg.ToolSegments[0].Speed != 30 {
		t.Fatalf("expected the retract to carry its feed rate (30), got %v", seg.ToolSegments[0].Speed)
	}
}

func TestAddRetractedMoveSkipsRetractWhenUnconfigured(t *testing.T) {
	seg := &model.LayerSegment{}
	addRetractedMove(seg, geom2d.Point{}, geom2d.Point{X: 20 * geom2d.Scale}, 50, 0, 0, 0)

	if len(seg.ToolSegments) != 1 {
		t.Fatalf("expected no retract without retract speed/distance, got %d tool segments", len(seg.ToolSegments))
	}
}

func TestPlanIslandOutlineStartsFromNearestVertex(t *testing.T) {
	outline := square(0, 10*geom2d.Scale)
	isle := &model.LayerIsland{
		OutlinePaths: geom2d.PathSet{outline},
		Segments: []model.LayerSegment{{
			Kind:   model.SegmentOutline,
			Region: geom2d.PathSet{outline},
			Speed:  60,
		}},
	}

	last := geom2d.Point{X: 11 * geom2d.Scale, Y: 11 * geom2d.Scale}
	nearestIdx, _ := FindClosestPoint(outline, last)
	planIsland(isle, nearestIdx, &last, 0, Settings{MoveSpeed: 50})

	seg := isle.Segments[0]
	if len(seg.ToolSegments) == 0 {
		t.Fatal("expected tool segments to be emitted")
	}
	if seg.ToolSegments[0].Kind != model.ToolTravel {
		t.Fatalf("expected first tool segment to be a travel to the start vertex, got %v", seg.ToolSegments[0].Kind)
	}
	if !seg.ToolSegments[0].P2.Equal(outline[nearestIdx]) {
		t.Fatalf("expected travel to end at nearest vertex %+v, got %+v", outline[nearestIdx], seg.ToolSegments[0].P2)
	}

	extrudes := 0
	for _, ts := range seg.ToolSegments {
		if ts.Kind == model.ToolExtrude {
			extrudes++
		}
	}
	if extrudes != len(outline) {
		t.Fatalf("expected one extrude per outline edge (%d), got %d", len(outline), extrudes)
	}
	if !last.Equal(outline[nearestIdx]) {
		t.Fatalf("expected lastPoint to end at the outline's starting vertex, got %+v", last)
	}
}

func TestPlanInfillSegmentOrdersLinesNearestFirstAndHugsBetween(t *testing.T) {
	outline := square(0, 10*geom2d.Scale)
	seg := &model.LayerSegment{
		Kind:   model.SegmentInfill,
		Region: geom2d.PathSet{outline},
		Speed:  60,
		FillLines: []model.FillLine{
			{P1: geom2d.Point{X: 2 * geom2d.Scale, Y: 0}, P2: geom2d.Point{X: 2 * geom2d.Scale, Y: 10 * geom2d.Scale}},
			{P1: geom2d.Point{X: 8 * geom2d.Scale, Y: 0}, P2: geom2d.Point{X: 8 * geom2d.Scale, Y: 10 * geom2d.Scale}},
		},
	}

	last := geom2d.Point{X: 9 * geom2d.Scale, Y: 10 * geom2d.Scale}
	planInfillSegment(seg, &last, 0, Settings{MoveSpeed: 50})

	extrudes := 0
	for _, ts := range seg.ToolSegments {
		if ts.Kind == model.ToolExtrude {
			extrudes++
		}
	}
	if extrudes != len(seg.FillLines) {
		t.Fatalf("expected one extrude per fill line (%d), got %d", len(seg.FillLines), extrudes)
	}

	if seg.ToolSegments[0].Kind != model.ToolTravel {
		t.Fatalf("expected the segment to open with a travel to the nearest line, got %v", seg.ToolSegments[0].Kind)
	}
}

func TestPlanLayerSkipsDegenerateIslandsAndVisitsEveryOther(t *testing.T) {
	outline := square(0, 10*geom2d.Scale)
	layer := &model.LayerComponent{
		Islands: []model.LayerIsland{
			{ // degenerate: first segment has no region
				Segments: []model.LayerSegment{{Kind: model.SegmentOutline}},
			},
			{
				OutlinePaths: geom2d.PathSet{outline},
				Segments: []model.LayerSegment{{
					Kind:   model.SegmentOutline,
					Region: geom2d.PathSet{outline},
					Speed:  60,
				}},
			},
		},
	}

	last := PlanLayer(layer, geom2d.Point{}, 0, Settings{MoveSpeed: 50})

	if len(layer.Islands[1].Segments[0].ToolSegments) == 0 {
		t.Fatal("expected the non-degenerate island to be planned")
	}
	if len(layer.Islands[0].Segments[0].ToolSegments) != 0 {
		t.Fatal("expected the degenerate island to be left untouched")
	}
	_ = last
}

func TestPlanSkirtEmitsAClosedRingPerLineAndAdvancesLastPoint(t *testing.T) {
	inner := square(0, 10*geom2d.Scale)
	outer := square(-5*geom2d.Scale, 15*geom2d.Scale)
	rings := []model.LayerSegment{
		{Kind: model.SegmentSkirt, Region: geom2d.PathSet{inner}, Speed: 40},
		{Kind: model.SegmentSkirt, Region: geom2d.PathSet{outer}, Speed: 40},
	}

	last := planSkirt(rings, geom2d.Point{}, 0, Settings{MoveSpeed: 50})

	for i, ring := range rings {
		extrudes := 0
		for _, ts := range ring.ToolSegments {
			if ts.Kind == model.ToolExtrude {
				extrudes++
			}
		}
		if extrudes != len(ring.Region[0]) {
			t.Fatalf("ring %d: expected one extrude per outline edge (%d), got %d", i, len(ring.Region[0]), extrudes)
		}
		if ring.ToolSegments[0].Kind != model.ToolTravel {
			t.Fatalf("ring %d: expected the ring to open with a travel, got %v", i, ring.ToolSegments[0].Kind)
		}
	}

	if last.Equal(geom2d.Point{}) {
		t.Fatal("expected the tool head to have moved off the origin after planning the skirt")
	}
}

func TestPlanWiresSkirtBeforeIslandsOnLayerZero(t *testing.T) {
	outline := square(0, 10*geom2d.Scale)
	skirtRing := square(-5*geom2d.Scale, 15*geom2d.Scale)

	mesh := &model.MeshInfo{
		Layers: []model.LayerComponent{{
			SkirtSegments: []model.LayerSegment{{
				Kind: model.SegmentSkirt, Region: geom2d.PathSet{skirtRing}, Speed: 40,
			}},
			Islands: []model.LayerIsland{{
				OutlinePaths: geom2d.PathSet{outline},
				Segments: []model.LayerSegment{{
					Kind: model.SegmentOutline, Region: geom2d.PathSet{outline}, Speed: 60,
				}},
			}},
		}},
	}

	Plan(mesh, 0.2, Settings{MoveSpeed: 50})

	if len(mesh.Layers[0].SkirtSegments[0].ToolSegments) == 0 {
		t.Fatal("expected the skirt ring to be tool-pathed")
	}
	if len(mesh.Layers[0].Islands[0].Segments[0].ToolSegments) == 0 {
		t.Fatal("expected the island outline to still be tool-pathed after the skirt")
	}
}

func TestPlanRewritesInitialTravelToPreviousLayerLastPoint(t *testing.T) {
	outline := square(0, 10*geom2d.Scale)
	mesh := &model.MeshInfo{
		Layers: []model.LayerComponent{
			{Islands: []model.LayerIsland{{
				OutlinePaths: geom2d.PathSet{outline},
				Segments: []model.LayerSegment{{
					Kind:   model.SegmentOutline,
					Region: geom2d.PathSet{outline},
					Speed:  60,
				}},
			}}},
			{Islands: []model.LayerIsland{{
				OutlinePaths: geom2d.PathSet{outline},
				Segments: []model.LayerSegment{{
					Kind:   model.SegmentOutline,
					Region: geom2d.PathSet{outline},
					Speed:  60,
				}},
			}}},
		},
	}

	Plan(mesh, 0.2, Settings{MoveSpeed: 50})

	if len(mesh.Layers[1].InitialTravels) == 0 {
		t.Fatal("expected layer 1 to have an initial travel")
	}
	lastOfLayer0 := mesh.Layers[0].Islands[0].Segments[0].ToolSegments
	finalPoint := lastOfLayer0[len(lastOfLayer0)-1].P2

	if !mesh.Layers[1].InitialTravels[0].P1.Equal(finalPoint) {
		t.Fatalf("expected layer 1's raise move to start at layer 0's last point %+v, got %+v",
			finalPoint, mesh.Layers[1].InitialTravels[0].P1)
	}
}
