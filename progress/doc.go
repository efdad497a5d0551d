// Package progress tracks pipeline progress as a two-level counter —
// which stage is running and how much of its work is done — and
// reports it through a single serialized callback (§5).
package progress
