// Package island turns a layer's raw slice segments into closed,
// nested LayerIslands (§4.3).
//
// Three passes run in sequence: chaining follows triangle adjacency to
// link segments into paths, closing salvages the chains that didn't
// loop back on their own (first by snapping nearby endpoints together,
// then by forcing together whatever is left), and nesting feeds the
// closed paths through a polygon union to recover hole/island topology.
// A path simplifier trims near-duplicate and near-collinear points
// before nesting; its collinearity test intentionally reproduces a
// defect in the source engine's dot-product computation (see InALine),
// because the simplifier and the tool-path stage downstream were written
// against its exact accept/reject behaviour.
package island
