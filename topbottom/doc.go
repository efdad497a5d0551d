// Package topbottom classifies which parts of each island are solid top
// or bottom surface, by differencing an island's outline against the
// intersection of the K layers above or below it (§4.5).
//
// Top and bottom classification run as two independent passes and can
// run concurrently — each only ever reads OutlinePaths (settled by the
// time this stage runs) and produces its own list of segment
// assignments; the caller merges both lists into the per-island segment
// slices single-threaded, so neither pass ever mutates shared state
// the other is also touching.
package topbottom
