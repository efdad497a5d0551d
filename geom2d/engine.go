package geom2d

import (
	"fmt"

	clipper "github.com/go-clipper/clipper2"
)

// FillRule selects how self-intersecting polygons resolve their interior.
// Re-exported from the wrapped clipper2 port so callers never import it
// directly.
type FillRule = clipper.FillRule

// Fill rules accepted by Union/Difference/Intersection/UnionTree.
const (
	EvenOdd = clipper.EvenOdd
	NonZero = clipper.NonZero
)

// Engine performs polygon Boolean operations and offsetting through
// github.com/go-clipper/clipper2. The clipper2 clipper and offsetter are
// stateful and not safe for concurrent use, so every call constructs its
// own; Engine itself holds no state, and one Engine may be shared across
// goroutines.
type Engine struct{}

// NewEngine returns a ready-to-use Engine. Cheap; holds no state of its
// own beyond what each call allocates.
func NewEngine() *Engine {
	return &Engine{}
}

// Union returns the union of subjects under fillRule.
func (e *Engine) Union(subjects PathSet, fillRule FillRule) (PathSet, error) {
	return e.boolOp(clipper.Union, fillRule, subjects, nil)
}

// Difference returns subjects minus clips under fillRule.
func (e *Engine) Difference(subjects, clips PathSet, fillRule FillRule) (PathSet, error) {
	return e.boolOp(clipper.Difference, fillRule, subjects, clips)
}

// Intersection returns the overlap of subjects and clips under fillRule.
func (e *Engine) Intersection(subjects, clips PathSet, fillRule FillRule) (PathSet, error) {
	return e.boolOp(clipper.Intersection, fillRule, subjects, clips)
}

func (e *Engine) boolOp(op clipper.ClipType, fillRule FillRule, subjects, clips PathSet) (PathSet, error) {
	c := clipper.NewClipper64()
	c.AddSubject(toPaths64(subjects))
	if len(clips) > 0 {
		c.AddClip(toPaths64(clips))
	}
	out, err := c.Execute(op, fillRule)
	if err != nil {
		return nil, fmt.Errorf("geom2d: boolean op failed: %w", err)
	}

	return fromPaths64(out), nil
}

// PolyNode is one node of a hierarchical union result: Outline is this
// node's closed contour (empty for the synthetic root), and Children are
// the regions nested directly inside it (alternating solid/hole by
// depth, per clipper2's PolyTree convention).
type PolyNode struct {
	Outline  Path
	Children []*PolyNode
}

// UnionTree unions subjects under fillRule and returns the hierarchical
// containment tree required by the island builder (§4.3): each depth-0
// child of the returned root is an island's outer contour, each of its
// children is a hole, and grandchildren are islands nested inside holes.
func (e *Engine) UnionTree(subjects PathSet, fillRule FillRule) (*PolyNode, error) {
	c := clipper.NewClipper64()
	c.AddSubject(toPaths64(subjects))
	tree, err := c.ExecuteTree(clipper.Union, fillRule)
	if err != nil {
		return nil, fmt.Errorf("geom2d: union tree failed: %w", err)
	}

	return fromPolyPath(tree), nil
}

// Offset insets (delta < 0) or outsets (delta > 0) every path in paths by
// |delta| fixed-point units, using a miter join and the closed-polygon
// end type (§4.4, §4.7). Returns ErrDegenerateOffset for delta == 0.
func (e *Engine) Offset(paths PathSet, delta int64) (PathSet, error) {
	if delta == 0 {
		return nil, ErrDegenerateOffset
	}
	co := clipper.NewClipperOffset()
	co.AddPaths(toPaths64(paths), clipper.Miter, clipper.ClosedPolygon)
	out := co.Execute(float64(delta))

	return fromPaths64(out), nil
}

func toPoint64(p Point) clipper.Point64 {
	return clipper.Point64{X: p.X, Y: p.Y}
}

func fromPoint64(p clipper.Point64) Point {
	return Point{X: p.X, Y: p.Y}
}

func toPath64(p Path) clipper.Path64 {
	out := make(clipper.Path64, len(p))
	for i, pt := range p {
		out[i] = toPoint64(pt)
	}

	return out
}

func fromPath64(p clipper.Path64) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = fromPoint64(pt)
	}

	return out
}

func toPaths64(ps PathSet) clipper.Paths64 {
	out := make(clipper.Paths64, len(ps))
	for i, p := range ps {
		out[i] = toPath64(p)
	}

	return out
}

func fromPaths64(ps clipper.Paths64) PathSet {
	out := make(PathSet, len(ps))
	for i, p := range ps {
		out[i] = fromPath64(p)
	}

	return out
}

func fromPolyPath(n *clipper.PolyPath) *PolyNode {
	if n == nil {
		return &PolyNode{}
	}
	out := &PolyNode{
		Outline:  fromPath64(n.Path),
		Children: make([]*PolyNode, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, fromPolyPath(child))
	}

	return out
}
