package infillregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

func square(lo, hi int64) geom2d.PathSet {
	return geom2d.PathSet{{
		{X: lo, Y: lo}, {X: hi, Y: lo}, {X: hi, Y: hi}, {X: lo, Y: hi},
	}}
}

func TestBuildWithNoOtherSegmentsUsesFullBoundary(t *testing.T) {
	isle := &model.LayerIsland{OutlinePaths: square(0, 100000)}
	err := Build(isle, 45, geom2d.NewEngine())
	require.NoError(t, err)
	require.Len(t, isle.Segments, 1)
	assert.Equal(t, model.SegmentInfill, isle.Segments[0].Kind)
	assert.Equal(t, 45.0, isle.Segments[0].Speed)
}

func TestBuildSubtractsNonOutlineSegments(t *testing.T) {
	isle := &model.LayerIsland{
		OutlinePaths: square(0, 100000),
		Segments: []model.LayerSegment{
			{Kind: model.SegmentOutline, Region: square(0, 90000)},
			{Kind: model.SegmentTop, Region: square(0, 50000)},
		},
	}
	err := Build(isle, 45, geom2d.NewEngine())
	require.NoError(t, err)
	require.Len(t, isle.Segments, 3)
	assert.Equal(t, model.SegmentInfill, isle.Segments[2].Kind)
}

func TestBuildNoOutlinePathsIsNoop(t *testing.T) {
	isle := &model.LayerIsland{}
	err := Build(isle, 45, geom2d.NewEngine())
	require.NoError(t, err)
	assert.Empty(t, isle.Segments)
}
