// Package geom2d carries every 2D coordinate used by the slicing pipeline
// in fixed-point integers, scaled by Scale units per millimetre.
//
// Rationale: the polygon Boolean/offset engine wrapped here
// (github.com/go-clipper/clipper2) operates on int64 coordinates; routing
// any producer or consumer of polygon data through float64 between stages
// would reintroduce the rounding drift the fixed-point representation
// exists to avoid. Convert to/from millimetres only at the mesh and
// G-code boundaries.
package geom2d
