package topbottom

import (
	"math"
	"sync"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

// KFromThickness computes ⌈topBottomThickness / layerHeight⌉ (§4.5).
func KFromThickness(topBottomThickness, layerHeight float64) int {
	if layerHeight <= 0 {
		return 0
	}

	return int(math.Ceil(topBottomThickness / layerHeight))
}

// assignment is one island's Top or Bottom segment, staged for a
// single-threaded merge into the layer's island list.
type assignment struct {
	layer   int
	island  int
	segment model.LayerSegment
}

// Run computes and merges both passes. K is the layer count computed by
// KFromThickness; when K is 0, neither pass produces anything.
func Run(layers []model.LayerComponent, k int, nozzleWidth, travelSpeed, infillSpeed float64, engine *geom2d.Engine) error {
	if k <= 0 {
		return nil
	}

	var top, bottom []assignment
	var topErr, bottomErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		top, topErr = computeTop(layers, k, nozzleWidth, travelSpeed, engine)
	}()
	go func() {
		defer wg.Done()
		bottom, bottomErr = computeBottom(layers, k, nozzleWidth, travelSpeed, infillSpeed, engine)
	}()
	wg.Wait()

	if topErr != nil {
		return topErr
	}
	if bottomErr != nil {
		return bottomErr
	}

	for _, a := range top {
		layers[a.layer].Islands[a.island].Segments = append(layers[a.layer].Islands[a.island].Segments, a.segment)
	}
	for _, a := range bottom {
		layers[a.layer].Islands[a.island].Segments = append(layers[a.layer].Islands[a.island].Segments, a.segment)
	}

	return nil
}

// unionLayerOutlines unions every island's OutlinePaths on one layer
// into a single region.
func unionLayerOutlines(layer model.LayerComponent, engine *geom2d.Engine) (geom2d.PathSet, error) {
	var all geom2d.PathSet
	for _, isle := range layer.Islands {
		all = append(all, isle.OutlinePaths...)
	}
	if len(all) == 0 {
		return nil, nil
	}

	return engine.Union(all, geom2d.NonZero)
}

// intersectRange intersects the unioned outlines of layers [lo, hi]
// inclusive.
func intersectRange(layers []model.LayerComponent, lo, hi int, engine *geom2d.Engine) (geom2d.PathSet, error) {
	var acc geom2d.PathSet
	first := true

	for j := lo; j <= hi; j++ {
		combined, err := unionLayerOutlines(layers[j], engine)
		if err != nil {
			return nil, err
		}
		if first {
			acc = combined
			first = false
			continue
		}
		acc, err = engine.Intersection(acc, combined, geom2d.NonZero)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func computeTop(layers []model.LayerComponent, k int, nozzleWidth, travelSpeed float64, engine *geom2d.Engine) ([]assignment, error) {
	var out []assignment
	n := len(layers)
	partNozzle := int64(nozzleWidth * float64(geom2d.Scale) / 10.0)

	for i := 1; i < n-k; i++ {
		aboveIntersection, err := intersectRange(layers, i+1, min(i+k, n-1), engine)
		if err != nil {
			return nil, err
		}
		if len(aboveIntersection) > 0 {
			grown, err := engine.Offset(aboveIntersection, partNozzle)
			if err != nil {
				return nil, err
			}
			aboveIntersection = grown
		}

		for isleIdx, isle := range layers[i].Islands {
			var diff geom2d.PathSet
			if len(aboveIntersection) == 0 {
				diff = isle.OutlinePaths
			} else {
				diff, err = engine.Difference(isle.OutlinePaths, aboveIntersection, geom2d.NonZero)
				if err != nil {
					return nil, err
				}
			}
			if len(diff) == 0 {
				continue
			}
			out = append(out, assignment{layer: i, island: isleIdx, segment: topSegment(diff, travelSpeed)})
		}
	}

	for i := n - k; i < n; i++ {
		if i < 0 {
			continue
		}
		for isleIdx, isle := range layers[i].Islands {
			if len(isle.OutlinePaths) == 0 {
				continue
			}
			out = append(out, assignment{layer: i, island: isleIdx, segment: topSegment(isle.OutlinePaths, travelSpeed)})
		}
	}

	return out, nil
}

func computeBottom(layers []model.LayerComponent, k int, nozzleWidth, travelSpeed, infillSpeed float64, engine *geom2d.Engine) ([]assignment, error) {
	var out []assignment
	n := len(layers)
	partNozzle := int64(nozzleWidth * float64(geom2d.Scale) / 10.0)

	for i := n - 2; i >= k; i-- {
		belowIntersection, err := intersectRange(layers, max(i-k, 0), i-1, engine)
		if err != nil {
			return nil, err
		}
		if len(belowIntersection) > 0 {
			grown, err := engine.Offset(belowIntersection, partNozzle)
			if err != nil {
				return nil, err
			}
			belowIntersection = grown
		}

		for isleIdx, isle := range layers[i].Islands {
			var diff geom2d.PathSet
			if len(belowIntersection) == 0 {
				diff = isle.OutlinePaths
			} else {
				diff, err = engine.Difference(isle.OutlinePaths, belowIntersection, geom2d.NonZero)
				if err != nil {
					return nil, err
				}
			}
			if len(diff) == 0 {
				continue
			}
			out = append(out, assignment{layer: i, island: isleIdx, segment: bottomBridgeSegment(diff, travelSpeed)})
		}
	}

	for i := 0; i < k && i < n; i++ {
		for isleIdx, isle := range layers[i].Islands {
			if len(isle.OutlinePaths) == 0 {
				continue
			}
			out = append(out, assignment{layer: i, island: isleIdx, segment: bottomSegment(isle.OutlinePaths, infillSpeed)})
		}
	}

	return out, nil
}

// topSegment and the non-initial bottom segment both read as bridges in
// the source engine (unimplemented bridge-speed heuristic stands in as
// travel speed, §4.5, non-goal "bridge-speed heuristics").
func topSegment(region geom2d.PathSet, travelSpeed float64) model.LayerSegment {
	return model.LayerSegment{
		Kind:             model.SegmentTop,
		Region:           region,
		Speed:            travelSpeed,
		Density:          100,
		InfillMultiplier: 2.0,
	}
}

func bottomSegment(region geom2d.PathSet, speed float64) model.LayerSegment {
	return model.LayerSegment{
		Kind:             model.SegmentBottom,
		Region:           region,
		Speed:            speed,
		Density:          100,
		InfillMultiplier: 1.0,
	}
}

func bottomBridgeSegment(region geom2d.PathSet, travelSpeed float64) model.LayerSegment {
	return model.LayerSegment{
		Kind:             model.SegmentBottom,
		Region:           region,
		Speed:            travelSpeed,
		Density:          100,
		InfillMultiplier: 2.0,
	}
}

