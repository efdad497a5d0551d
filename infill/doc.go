// Package infill generates the 45°-diagonal fill lines for every
// infill-carrying LayerSegment (§4.8).
//
// Lines run parallel to one of the two diagonals of the XY plane
// (x−y or x+y, alternating by layer so adjacent layers cross-hatch),
// spaced by a divider derived from density. Generation projects every
// outline edge onto the tilt axis, finds where an integer multiple of
// the divider falls inside that edge's projected span, and reconstructs
// the corresponding point back on the edge. Exact hits on a path vertex
// are corner cases: an "exit" corner produces one point, a "touching"
// corner produces none, distinguished by a clockwise-orientation test
// against the point just past the corner.
package infill
