// Package pipeline drives the slicer end to end over an already indexed
// mesh: per-layer slicing, island reconstruction, shells, top/bottom,
// infill region, skirt, infill fill lines, and tool-path planning (§2).
//
// parallelFor replaces the source engine's bespoke sleep-and-poll thread
// pool with a plain worker-pool split into GOMAXPROCS(0)*3 blocks over a
// sync.WaitGroup (§5 REDESIGN FLAGS); each goroutine gets its own
// geom2d.Engine since the underlying clipper2 engine is not declared
// safe for concurrent reuse.
package pipeline
