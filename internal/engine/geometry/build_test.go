package geometry

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/texscene/pkg/math"
)

func build(t *testing.T, b Builder) *Canvas {
	t.Helper()
	c := NewCanvas()
	b(c)
	require.NoError(t, c.Validate())
	return c
}

func TestBuilderTriangleCounts(t *testing.T) {
	tests := []struct {
		name      string
		builder   Builder
		triangles int
	}{
		{"cylinder", BuildCylinder, cylinderBody.Len() / 3},
		{"discs", BuildDiscs, (cylinderBottomDisc.Len() + cylinderTopDisc.Len()) / 3},
		{"sphere", BuildSphere, len(sphereElements) / 3},
		{"cube", BuildCube, 6 * cubeRightFace.Len() / 3},
		{"prism", BuildPrism, 8},
		{"teapot", BuildTeapot, len(teapotElements) / 3},
		{"fork", BuildFork, len(forkElements) / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := build(t, tt.builder)
			assert.Equal(t, tt.triangles, c.NumTriangles())
			assert.Equal(t, c.NumTriangles(), c.NumTexCoords())
		})
	}
}

func TestBuildCylinderBody(t *testing.T) {
	c := build(t, BuildCylinder)
	require.Equal(t, 100, c.NumTriangles())
	for i, tri := range c.Triangles() {
		for k, n := range tri.Normals {
			assert.Zerof(t, n.Y, "triangle %d normal %d", i, k)
			assert.Equal(t, tri.Vertices[k].X, n.X)
			assert.Equal(t, tri.Vertices[k].Z, n.Z)
		}
	}
}

func TestBuildDiscsNormals(t *testing.T) {
	c := build(t, BuildDiscs)
	half := c.NumTriangles() / 2
	for i, tri := range c.Triangles() {
		want := math.Vec3{Y: 1}
		if i < half {
			want = math.Vec3{Y: -1}
		}
		for _, n := range tri.Normals {
			assert.Equal(t, want, n)
		}
		for k, tc := range c.TexCoords()[i] {
			assert.Equal(t, WrapDisc(tri.Vertices[k]), tc)
		}
	}
}

func TestBuildCubeFaceGroups(t *testing.T) {
	c := build(t, BuildCube)
	per := cubeRightFace.Len() / 3
	require.Equal(t, 6*per, c.NumTriangles())

	groups := map[math.Vec3]int{}
	for _, tri := range c.Triangles() {
		assert.Equal(t, tri.Normals[0], tri.Normals[1])
		assert.Equal(t, tri.Normals[0], tri.Normals[2])
		groups[tri.Normals[0]]++
	}
	assert.Len(t, groups, 6)
	for n, count := range groups {
		assert.Equalf(t, per, count, "normal %v", n)
	}
}

func TestBuildCubeTexCoordsInRange(t *testing.T) {
	c := build(t, BuildCube)
	for i, tri := range c.Triangles() {
		for k, v := range tri.Vertices {
			axis := DominantAxis(v)
			assert.InDelta(t, 0.5, absf(v.Array()[axis]), eps)

			tc := c.TexCoords()[i][k]
			assert.GreaterOrEqual(t, tc.U, float32(0))
			assert.LessOrEqual(t, tc.U, CubeTileScale)
			assert.GreaterOrEqual(t, tc.V, float32(0))
			assert.LessOrEqual(t, tc.V, CubeTileScale)
		}
	}
}

func TestBuildSphereNormals(t *testing.T) {
	c := build(t, BuildSphere)
	for _, tri := range c.Triangles() {
		for k, n := range tri.Normals {
			assert.InDelta(t, 1, n.Length(), eps)
			assert.Equal(t, tri.Vertices[k].Normalize(), n)
		}
	}
}

func TestBuildHemisphereFilters(t *testing.T) {
	full := build(t, BuildSphere)
	half := build(t, BuildHemisphere)

	require.NotZero(t, half.NumTriangles())
	assert.Less(t, half.NumTriangles(), full.NumTriangles()/2)

	for _, tri := range half.Triangles() {
		for _, v := range tri.Vertices {
			assert.LessOrEqual(t, v.Y, float32(0))
		}
	}

	var below, straddling int
	for _, tri := range full.Triangles() {
		pos, neg := 0, 0
		for _, v := range tri.Vertices {
			if v.Y > 0 {
				pos++
			} else {
				neg++
			}
		}
		switch {
		case pos == 0:
			below++
		case neg > 0:
			straddling++
		}
	}
	assert.NotZero(t, straddling)
	assert.Equal(t, below, half.NumTriangles())
}

func TestBuildPrismNormals(t *testing.T) {
	c := build(t, BuildPrism)
	slant := c.Triangles()[6].Normals[0]
	assert.InDelta(t, 0.707107, slant.X, eps)
	assert.Zero(t, slant.Y)
	assert.InDelta(t, 0.707107, slant.Z, eps)

	for i, tri := range c.Triangles() {
		e1 := tri.Vertices[1].Sub(tri.Vertices[0])
		e2 := tri.Vertices[2].Sub(tri.Vertices[0])
		face := e1.Cross(e2).Normalize()
		d := face.Dot(tri.Normals[0])
		assert.InDeltaf(t, 1, absf(d), eps, "triangle %d normal not perpendicular to face", i)
	}
	for _, tc := range c.TexCoords() {
		assert.Equal(t, [3]TexCoord{}, tc)
	}
}

func TestBuildLeftTeapot(t *testing.T) {
	full := build(t, BuildTeapot)
	left := build(t, BuildLeftTeapot)

	require.NotZero(t, left.NumTriangles())
	assert.Less(t, left.NumTriangles(), full.NumTriangles())
	for _, tri := range left.Triangles() {
		for _, v := range tri.Vertices {
			assert.LessOrEqual(t, v.X, float32(0))
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	c := NewCanvas()
	for _, s := range Shapes() {
		Create(c, s)
		first := c.Mesh()
		Create(c, s)
		second := c.Mesh()
		assert.Truef(t, sameBits(first, second), "shape %v", s)
	}
}

// sameBits compares meshes bit for bit so NaN coordinates compare equal.
func sameBits(a, b *Mesh) bool {
	if len(a.Triangles) != len(b.Triangles) || len(a.TexCoords) != len(b.TexCoords) {
		return false
	}
	for i := range a.Triangles {
		if a.Triangles[i] != b.Triangles[i] {
			return false
		}
	}
	for i := range a.TexCoords {
		for k := range a.TexCoords[i] {
			x, y := a.TexCoords[i][k], b.TexCoords[i][k]
			if stdmath.Float32bits(x.U) != stdmath.Float32bits(y.U) ||
				stdmath.Float32bits(x.V) != stdmath.Float32bits(y.V) {
				return false
			}
		}
	}
	return true
}

func TestBuildDoesNotMutateTables(t *testing.T) {
	before := cubeVertices
	c := NewCanvas()
	BuildCube(c)
	for i := range c.Triangles() {
		c.Triangles()[i].Vertices[0] = math.Vec3{X: 99}
	}
	assert.Equal(t, before, cubeVertices)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
