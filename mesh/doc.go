// Package mesh provides the immutable, indexed triangle mesh that seeds
// the slicing pipeline.
//
// A Mesh is built once from raw vertex/triangle data (as an STL importer
// external to this module would hand off) via NewMesh, which welds
// geometrically-coincident vertices, builds the vertex→triangle
// adjacency, and computes the bounding box. There is no mutator after
// construction: the original ChopperEngine's ShrinkVertices could
// destroy trailing vertex records still referenced from triangle
// adjacency if called at the wrong time (see DESIGN.md); removing it
// entirely and making Mesh immutable closes that defect class outright.
package mesh
