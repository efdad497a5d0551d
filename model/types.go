package model

import "github.com/slicestack/chopper/geom2d"

// LayerSliceSegment is a raw 2D segment produced by the layer slicer from
// a single triangle/z-plane intersection (§4.2). Lifetime: created by
// sliceplane, consumed (and then discardable) by island.
type LayerSliceSegment struct {
	P1, P2 geom2d.Point

	// TriangleID is the index into Mesh.Triangles that produced this
	// segment. A triangle contributes at most one segment per layer.
	TriangleID int

	// UsedInPolygon is fresh→used, one-way (§4.9): the island chainer
	// sets it once it folds this segment into a chain. Re-consuming a
	// used segment is a defect, not a recoverable case.
	UsedInPolygon bool
}

// SegmentKind tags which LayerSegment variant a value holds.
type SegmentKind int

const (
	SegmentOutline SegmentKind = iota
	SegmentInfill
	SegmentTop
	SegmentBottom
	SegmentSupport
	SegmentSkirt
	SegmentRaft
)

// String names a SegmentKind the way log lines and debug output want it.
func (k SegmentKind) String() string {
	switch k {
	case SegmentOutline:
		return "Outline"
	case SegmentInfill:
		return "Infill"
	case SegmentTop:
		return "Top"
	case SegmentBottom:
		return "Bottom"
	case SegmentSupport:
		return "Support"
	case SegmentSkirt:
		return "Skirt"
	case SegmentRaft:
		return "Raft"
	default:
		return "Unknown"
	}
}

// IsInfillCarrying reports whether segments of this kind additionally
// hold FillLines/Density/InfillMultiplier (§3: Infill, Top, Bottom,
// Support).
func (k SegmentKind) IsInfillCarrying() bool {
	switch k {
	case SegmentInfill, SegmentTop, SegmentBottom, SegmentSupport:
		return true
	default:
		return false
	}
}

// FillLine is one straight infill line, already clipped to its owning
// segment's region.
type FillLine struct {
	P1, P2 geom2d.Point
}

// LayerSegment is a tagged variant over the seven segment kinds in §3.
// Every LayerSegment carries a region boundary and a target speed;
// InfillCarrying kinds additionally populate FillLines, Density and
// InfillMultiplier. ToolSegments are appended by the planner once the
// region/fill data is final.
type LayerSegment struct {
	Kind   SegmentKind
	Region geom2d.PathSet
	Speed  float64

	// InfillCarrying payload (zero value when Kind is not carrying).
	FillLines        []FillLine
	Density          float64
	InfillMultiplier float64

	// ToolSegments is the ordered tool-path this segment resolves to,
	// appended by toolpath and consumed in order by the emitter.
	ToolSegments []ToolSegment
}

// ToolSegmentKind tags which ToolSegment variant a value holds.
type ToolSegmentKind int

const (
	ToolRetract ToolSegmentKind = iota
	ToolTravel
	ToolExtrude
)

// ToolSegment is a tagged variant over the three tool-head motions the
// emitter consumes in order (§3, §6): a logical Retract carrying a
// length, or a Travel/Extrude carrying endpoints, Z height and speed.
type ToolSegment struct {
	Kind ToolSegmentKind

	// Retract payload.
	RetractDistance float64

	// Travel/Extrude payload.
	P1, P2 geom2d.Point
	Z      float64
	Speed  float64
}

// LayerIsland is one connected solid region on a layer (§3). OutlinePaths
// holds the outer contour first and any hole contours after; Segments is
// the append-only, order-significant collection the rest of the pipeline
// builds up (Outline segments always precede later-stage segments by
// construction, §4.9).
type LayerIsland struct {
	OutlinePaths geom2d.PathSet
	Segments     []LayerSegment
}

// LayerComponent is the per-layer container (§3): a transient segment
// list and face→segment index map used only during slicing/chaining, the
// resulting island list, this layer's default speeds, and the initial
// Z-move Travel segments prepended before any island tool-path.
type LayerComponent struct {
	// Z is this layer's height in millimetres.
	Z float64

	// SliceSegments is transient: populated by sliceplane, consumed and
	// cleared by island once chaining completes.
	SliceSegments []LayerSliceSegment

	// FaceToSegmentIndex maps a triangle id to its slice-segment index
	// on this layer (§3: a triangle contributes at most one segment per
	// layer). Transient, same lifetime as SliceSegments.
	FaceToSegmentIndex map[int]int

	Islands []LayerIsland

	// SkirtSegments holds the priming rings generated on layer 0 only
	// (§4.7). Empty on every other layer.
	SkirtSegments []LayerSegment

	// InitialTravels is prepended before any island tool-path once the
	// planner runs (§4.10 step 1: a single Z-raising Travel).
	InitialTravels []ToolSegment
}

// MeshInfo is the top-level container owning the immutable mesh, the
// computed layer count, and one LayerComponent per z-step (§3).
type MeshInfo struct {
	LayerCount int
	Layers     []LayerComponent
}

// NewMeshInfo default-constructs one LayerComponent per z-step at the
// given layer height, spanning [0, maxZ] inclusive per §4.1's ⌈⌉+1 rule.
func NewMeshInfo(layerCount int, layerHeight float64) *MeshInfo {
	layers := make([]LayerComponent, layerCount)
	for i := range layers {
		layers[i] = LayerComponent{
			Z:                  float64(i) * layerHeight,
			FaceToSegmentIndex: make(map[int]int),
		}
	}

	return &MeshInfo{LayerCount: layerCount, Layers: layers}
}
