package island

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicestack/chopper/geom2d"
)

func TestInALineUsesTheDocumentedBuggyFormula(t *testing.T) {
	// Choose points where the correct dot product (0) and the buggy one
	// (200) differ, to pin the documented (buggy) behaviour down.
	p2 := geom2d.Point{X: 0, Y: 0}
	p1 := geom2d.Point{X: 10, Y: 0}
	p3 := geom2d.Point{X: 0, Y: 10}

	a := p1.Sub(p2)
	b := p3.Sub(p2)
	buggyDot := float64(a.X*a.X + b.Y*b.Y)
	realDot := float64(a.X*b.X + a.Y*b.Y)
	require.NotEqual(t, buggyDot, realDot, "fixture should exercise the discrepancy")

	magA := math.Sqrt(float64(a.X*a.X + a.Y*a.Y))
	magB := math.Sqrt(float64(b.X*b.X + b.Y*b.Y))
	wantCos := buggyDot / (magA * magB)
	thresh := math.Cos(177.5 / 180.0 * math.Pi)

	assert.Equal(t, wantCos < thresh, InALine(p1, p2, p3))
}

func TestInALineZeroMagnitudeIsAlwaysInLine(t *testing.T) {
	p := geom2d.Point{X: 5, Y: 5}
	assert.True(t, InALine(p, p, p))
}

func TestSimplifyShortPathUnchanged(t *testing.T) {
	p := geom2d.Path{{0, 0}, {1, 1}}
	assert.Equal(t, p, Simplify(p))
}

func TestSimplifyDropsNearDuplicatePoints(t *testing.T) {
	square := geom2d.Path{
		{0, 0}, {100000, 0}, {100000, 100000}, {0, 100000},
		{1, 0}, // near-duplicate of the origin, inside simplifyThreshold
	}
	out := Simplify(square)
	assert.LessOrEqual(t, len(out), len(square))
}

func TestCloseGapsJoinsNearbyEndpoints(t *testing.T) {
	openPaths := geom2d.PathSet{
		{{0, 0}, {100000, 0}, {100000, 100000}},
		{{100000, 100000}, {0, 100000}, {100, 50}}, // ends ~50 units from (0,0)
	}
	closed, stillOpen := CloseGaps(openPaths)
	require.Len(t, closed, 1)
	assert.Empty(t, stillOpen)
	assert.True(t, closed[0][0].Equal(closed[0][len(closed[0])-1]) ||
		sqDist(closed[0][0], closed[0][len(closed[0])-1]) <= gapCloseThreshold)
}

func TestForceCloseAlwaysConsumesEveryChain(t *testing.T) {
	chains := geom2d.PathSet{
		{{0, 0}, {10, 10}},
		{{500, 500}, {600, 600}},
		{{1000000, 1000000}, {2000000, 2000000}},
	}
	closed := ForceClose(chains)
	require.Len(t, closed, 1)

	total := 0
	for _, c := range chains {
		total += len(c)
	}
	assert.Len(t, closed[0], total)
}
