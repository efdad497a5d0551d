// Package model holds the intermediate data the slicing pipeline builds
// up and mutates layer by layer: the raw slice segments that come out of
// sliceplane, the closed-polygon LayerSegment variants that outline,
// shell, topbottom, infillregion, skirt and infill stages add, the
// LayerIsland/LayerComponent nesting produced by island, and the
// ToolSegment variants toolpath finally emits.
//
// The original engine modeled this with a polymorphic segment base class
// and downcasts; Go has no such hierarchy, so LayerSegment and
// ToolSegment are tagged unions (a Kind field plus every variant's
// payload living side by side), and callers switch on Kind. This keeps
// every segment a plain, comparable, copyable value — no interface
// boxing, no reflection — at the cost of a few always-unused fields in
// any given variant, which is the tradeoff the rest of this module's
// pipeline stages were designed around.
package model
