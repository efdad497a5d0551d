// Package toolpath turns a layer's finished LayerSegments into an
// ordered ToolSegment stream: retract, travel and extrude motions ready
// for the G-code emitter (§4.9).
//
// Per layer: raise Z, then repeatedly pick the nearest not-yet-visited
// island (an approximate binary search over its first outline path, not
// an exact nearest-point scan — intentionally preserved, see
// FindClosestPoint), walk its segments in stored order (Outline
// segments precede infill-carrying ones by construction), extrude each
// outline starting from the closest vertex, and for infill-carrying
// segments extrude each fill line in nearest-first order, bridging
// between lines with a short hugging traversal along the segment's own
// outline.
package toolpath
