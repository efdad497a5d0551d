package topbottom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicestack/chopper/geom2d"
	"github.com/slicestack/chopper/model"
)

func TestKFromThicknessRoundsUp(t *testing.T) {
	assert.Equal(t, 3, KFromThickness(0.6, 0.2))
	assert.Equal(t, 3, KFromThickness(0.5, 0.2))
	assert.Equal(t, 0, KFromThickness(0.6, 0))
}

func square(offset int64) geom2d.PathSet {
	s := geom2d.Scale
	return geom2d.PathSet{{
		{X: offset, Y: offset}, {X: offset + s, Y: offset}, {X: offset + s, Y: offset + s}, {X: offset, Y: offset + s},
	}}
}

func TestRunZeroKProducesNoSegments(t *testing.T) {
	layers := []model.LayerComponent{
		{Islands: []model.LayerIsland{{OutlinePaths: square(0)}}},
	}
	err := Run(layers, 0, 0.5, 50, 40, geom2d.NewEngine())
	require.NoError(t, err)
	assert.Empty(t, layers[0].Islands[0].Segments)
}

func TestRunBottomLayerGetsBottomSegmentAtInfillSpeed(t *testing.T) {
	layers := make([]model.LayerComponent, 4)
	for i := range layers {
		layers[i] = model.LayerComponent{Islands: []model.LayerIsland{{OutlinePaths: square(0)}}}
	}

	err := Run(layers, 1, 0.5, 50, 40, geom2d.NewEngine())
	require.NoError(t, err)

	segs := layers[0].Islands[0].Segments
	require.Len(t, segs, 1)
	assert.Equal(t, model.SegmentBottom, segs[0].Kind)
	assert.Equal(t, 40.0, segs[0].Speed)
	assert.Equal(t, 1.0, segs[0].InfillMultiplier)
}

func TestRunTopLayerGetsTopSegmentAtTravelSpeed(t *testing.T) {
	layers := make([]model.LayerComponent, 4)
	for i := range layers {
		layers[i] = model.LayerComponent{Islands: []model.LayerIsland{{OutlinePaths: square(0)}}}
	}

	err := Run(layers, 1, 0.5, 50, 40, geom2d.NewEngine())
	require.NoError(t, err)

	segs := layers[len(layers)-1].Islands[0].Segments
	require.Len(t, segs, 1)
	assert.Equal(t, model.SegmentTop, segs[0].Kind)
	assert.Equal(t, 50.0, segs[0].Speed)
	assert.Equal(t, 2.0, segs[0].InfillMultiplier)
}
