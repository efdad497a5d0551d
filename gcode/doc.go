// Package gcode renders a planned model.MeshInfo to text G-code (§6).
//
// This is the one external collaborator the specification gives a full
// text contract for, so unlike the mesh importer it gets a concrete
// reference implementation here rather than being named only by
// interface: Writer takes an io.Writer and nothing else — no serial
// transport, no binary format.
package gcode
