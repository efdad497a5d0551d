// Package debugsvg renders a single layer's islands, shells and fill
// lines to an SVG file for visual debugging. It is a supplemental,
// optional feature (not part of the core pipeline contract in §6) built
// on github.com/ajstarks/svgo.
package debugsvg
