package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 10, Y: 20}
	q := Point{X: 3, Y: 4}

	assert.Equal(t, Point{X: 7, Y: 16}, p.Sub(q))
	assert.Equal(t, Point{X: 13, Y: 24}, p.Add(q))
	assert.False(t, p.Equal(q))
	assert.True(t, p.Equal(Point{X: 10, Y: 20}))
}

func TestPointDistSq(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	assert.Equal(t, int64(25), p.DistSq(q))
}

func TestCrossProductOrientation(t *testing.T) {
	// Counter-clockwise turn at the origin has positive cross product.
	o := Point{0, 0}
	p := Point{1, 0}
	q := Point{0, 1}
	assert.Positive(t, Cross(o, p, q))
	assert.Negative(t, Cross(o, q, p))
}

func TestPathReversedPreservesPoints(t *testing.T) {
	p := Path{{0, 0}, {1, 0}, {1, 1}}
	r := p.Reversed()
	require.Len(t, r, 3)
	assert.Equal(t, Point{1, 1}, r[0])
	assert.Equal(t, Point{0, 0}, r[2])
	// Original untouched.
	assert.Equal(t, Point{0, 0}, p[0])
}

func TestPathSetCloneIsIndependent(t *testing.T) {
	ps := PathSet{{{0, 0}, {1, 1}}}
	clone := ps.Clone()
	clone[0][0].X = 99
	assert.Equal(t, int64(0), ps[0][0].X)
}
