// Package skirt builds the priming loops printed around the first
// layer's geometry before the real print begins (§4.7).
//
// The source engine leaves skirt generation as an unimplemented TODO;
// this package supplies the concrete behaviour the specification
// describes: union every first-layer island outline, offset outward by
// the configured skirt distance, then emit N concentric rings one
// nozzle width apart.
package skirt
