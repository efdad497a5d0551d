// Package infillregion extracts, per island, the sparse-infill area: the
// island boundary minus every already-placed Top/Bottom/Support/Skirt
// region (§4.6). Outline segments are excluded from the subtraction
// because the island boundary they bound is already the starting
// subject.
package infillregion
