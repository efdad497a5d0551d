package geom2d

import "errors"

// Scale is the repository-wide fixed-point scale factor: integer units
// per millimetre. A value of 1.0 mm is represented as Scale units.
const Scale int64 = 100000

// Sentinel errors for geom2d operations.
var (
	// ErrEmptyPath is returned by operations that require at least one point.
	ErrEmptyPath = errors.New("geom2d: path has no points")

	// ErrDegenerateOffset indicates an offset request with non-positive
	// magnitude where a strictly positive or negative delta was required.
	ErrDegenerateOffset = errors.New("geom2d: zero offset delta")
)

// Point is a 2D point in fixed-point coordinates.
type Point struct {
	X, Y int64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// DistSq returns the squared Euclidean distance between p and q.
// Kept squared throughout the pipeline so thresholds never need a sqrt.
func (p Point) DistSq(q Point) int64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Cross returns the Z component of (p-origin) x (q-origin), i.e. the
// 2D cross product of vectors op and oq.
func Cross(o, p, q Point) int64 {
	return (p.X-o.X)*(q.Y-o.Y) - (p.Y-o.Y)*(q.X-o.X)
}

// Path is an ordered sequence of points. Closed loops are implicit: the
// last point connects back to the first. Paths are never nil-terminated
// with a repeated closing point.
type Path []Point

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Reversed returns a new Path with points in reverse order.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}

	return out
}

// PathSet is a set of paths: for an island's outline, the outer contour
// followed by zero or more hole loops.
type PathSet []Path

// Clone returns an independent deep copy of ps.
func (ps PathSet) Clone() PathSet {
	out := make(PathSet, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}

	return out
}
