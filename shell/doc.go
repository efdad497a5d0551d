// Package shell insets each island's sliced outline into concentric
// printed walls, and leaves behind the innermost contour as the
// boundary later stages trim infill against (§4.4).
package shell
