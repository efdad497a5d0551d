package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitCube returns the 12-triangle, 8-vertex unit cube used by §8's
// end-to-end scenarios, with each face's corners repeated per-triangle
// (as a naive STL reader would hand off raw floats with no sharing).
func unitCube() ([]Vec3, [][3]int) {
	c := [8]Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	faces := [][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}

	var verts []Vec3
	var tris [][3]int
	for _, f := range faces {
		base := len(verts)
		verts = append(verts, c[f[0]], c[f[1]], c[f[2]], c[f[3]])
		tris = append(tris, [3]int{base, base + 1, base + 2})
		tris = append(tris, [3]int{base, base + 2, base + 3})
	}

	return verts, tris
}

func TestNewMeshWeldsDuplicateVertices(t *testing.T) {
	verts, tris := unitCube()
	m, err := NewMesh(verts, tris)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 8, "cube corners should weld down to 8 distinct positions")
	assert.Len(t, m.Triangles, 12)
}

func TestNewMeshBounds(t *testing.T) {
	verts, tris := unitCube()
	m, err := NewMesh(verts, tris)
	require.NoError(t, err)

	assert.Equal(t, Vec3{0, 0, 0}, m.Bounds.Min)
	assert.Equal(t, Vec3{1, 1, 1}, m.Bounds.Max)
}

func TestNewMeshAdjacencyCoversEveryTriangle(t *testing.T) {
	verts, tris := unitCube()
	m, err := NewMesh(verts, tris)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, neighbors := range m.Adjacency {
		for _, ti := range neighbors {
			seen[ti] = true
		}
	}
	assert.Len(t, seen, len(m.Triangles))
}

func TestNewMeshRejectsOutOfRangeIndex(t *testing.T) {
	verts, tris := unitCube()
	tris[0][0] = len(verts) + 5

	_, err := NewMesh(verts, tris)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVertexIndexOutOfRange)
}

func TestNewMeshRejectsEmptyTriangleList(t *testing.T) {
	_, err := NewMesh(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTriangles)
}

func TestLayerCountMatchesUnitCubeScenario(t *testing.T) {
	verts, tris := unitCube()
	m, err := NewMesh(verts, tris)
	require.NoError(t, err)

	// §8 scenario 1: layer height 0.2 on a unit cube yields 6 layers
	// (z = 0.0, 0.2, 0.4, 0.6, 0.8, 1.0 under the ⌈⌉+1 rule).
	assert.Equal(t, 6, m.LayerCount(0.2))
}
