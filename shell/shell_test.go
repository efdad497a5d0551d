package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

func unitSquare() geom2d.PathSet {
	s := geom2d.Scale
	return geom2d.PathSet{{
		{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s},
	}}
}

func TestBuildEmitsOneOutlinePerShell(t *testing.T) {
	isle := &model.LayerIsland{OutlinePaths: unitSquare()}
	engine := geom2d.NewEngine()

	err := Build(isle, 0.5, 3, 60, engine)
	require.NoError(t, err)

	outlineCount := 0
	for _, seg := range isle.Segments {
		if seg.Kind == model.SegmentOutline {
			outlineCount++
		}
	}
	assert.Equal(t, 3, outlineCount)
}

func TestBuildReplacesOutlinePathsWithInfillBoundary(t *testing.T) {
	isle := &model.LayerIsland{OutlinePaths: unitSquare()}
	engine := geom2d.NewEngine()

	original := isle.OutlinePaths.Clone()
	err := Build(isle, 0.5, 1, 60, engine)
	require.NoError(t, err)

	assert.NotEqual(t, original, isle.OutlinePaths)
}

func TestBuildNoOutlinePathsIsNoop(t *testing.T) {
	isle := &model.LayerIsland{}
	err := Build(isle, 0.5, 1, 60, geom2d.NewEngine())
	require.NoError(t, err)
	assert.Empty(t, isle.Segments)
}
