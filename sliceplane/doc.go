// Package sliceplane intersects every mesh triangle against each layer's
// z-plane, producing the raw oriented LayerSliceSegments the island
// builder chains into closed polygons (§4.2).
//
// A triangle coplanar with the slice plane (minZ == maxZ) contributes
// nothing: its two non-coplanar neighbours already produce the segment
// that bounds the same edge. Everything else classifies which of the
// triangle's three vertices is the "apex" the other two sides share —
// the vertex the two intersecting edges have in common — then
// interpolates the intersection point on each of those two edges.
package sliceplane
