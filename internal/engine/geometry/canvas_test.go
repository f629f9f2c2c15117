package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/texscene/pkg/math"
)

func TestCanvasAccumulates(t *testing.T) {
	c := NewCanvas()
	p := math.Vec3{X: 1}
	n := math.Vec3{Y: 1}

	c.AddTriangleWithNormals(p, n, p, n, p, n)
	c.AddTextureCoords(TexCoord{U: 1}, TexCoord{V: 1}, TexCoord{})

	require.Equal(t, 1, c.NumTriangles())
	require.Equal(t, 1, c.NumTexCoords())
	assert.Equal(t, p, c.Triangles()[0].Vertices[2])
	assert.Equal(t, TexCoord{V: 1}, c.TexCoords()[0][1])
	assert.NoError(t, c.Validate())
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas()
	BuildCube(c)
	require.NotZero(t, c.NumTriangles())

	c.Clear()
	assert.Zero(t, c.NumTriangles())
	assert.Zero(t, c.NumTexCoords())
}

func TestCanvasValidateMisaligned(t *testing.T) {
	c := NewCanvas()
	var v math.Vec3
	c.AddTriangleWithNormals(v, v, v, v, v, v)

	err := c.Validate()
	assert.ErrorIs(t, err, ErrMisalignedTexCoords)
}

func TestCanvasMeshIsCopy(t *testing.T) {
	c := NewCanvas()
	BuildPrism(c)
	m := c.Mesh()
	want := m.Triangles[0]

	c.Clear()
	BuildDiscs(c)

	assert.Equal(t, want, m.Triangles[0])
	assert.Equal(t, 8, m.NumTriangles())
	assert.Equal(t, 24, m.NumVertices())
	assert.True(t, m.Aligned())
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 300, cylinderBody.Len())
	assert.Equal(t, 96, cubeFrontFace.Len())
}
