package infill

import "github.com/slicestack/chopper/geom2d"

// Divider returns the spacing, in scaled fixed-point units, between
// consecutive 45° fill lines for the given density percentage (§4.8):
// extrusion-width + gap = nozzleWidth · (1 + (1 − d) / d).
func Divider(density, nozzleWidth float64) int64 {
	if density <= 0 {
		return int64(nozzleWidth * float64(geom2d.Scale))
	}

	d := density / 100.0
	a := 1 - d
	x := a / d
	spacing := int64(nozzleWidth * float64(geom2d.Scale) * x)

	return spacing + int64(nozzleWidth*float64(geom2d.Scale))
}
