package geometry

import (
	"errors"
	"fmt"
)

// ErrMisalignedTexCoords is returned when a canvas holds a different number
// of texture triples than triangles.
var ErrMisalignedTexCoords = errors.New("texture coordinates not aligned with triangles")

// Canvas accumulates triangles and texture coordinates for one shape build.
// It is cleared before every build and reused across shapes.
type Canvas struct {
	triangles []Triangle
	texCoords [][3]TexCoord
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		triangles: make([]Triangle, 0, 1024),
		texCoords: make([][3]TexCoord, 0, 1024),
	}
}

// Clear discards all triangles and texture coordinates.
func (c *Canvas) Clear() {
	c.triangles = c.triangles[:0]
	c.texCoords = c.texCoords[:0]
}

// AddTriangleWithNormals appends one triangle. Winding and degeneracy are
// not checked.
func (c *Canvas) AddTriangleWithNormals(p1 Vertex, n1 Normal, p2 Vertex, n2 Normal, p3 Vertex, n3 Normal) {
	c.triangles = append(c.triangles, Triangle{
		Vertices: [3]Vertex{p1, p2, p3},
		Normals:  [3]Normal{n1, n2, n3},
	})
}

// AddTextureCoords appends the texture coordinates of the most recently
// added triangle. Call it exactly once per AddTriangleWithNormals.
func (c *Canvas) AddTextureCoords(t1, t2, t3 TexCoord) {
	c.texCoords = append(c.texCoords, [3]TexCoord{t1, t2, t3})
}

// addMapped appends a triangle and the coordinates wrap assigns to it.
func (c *Canvas) addMapped(p [3]Vertex, n [3]Normal, wrap Parameterizer) {
	c.AddTriangleWithNormals(p[0], n[0], p[1], n[1], p[2], n[2])
	c.AddTextureCoords(wrap(p[0]), wrap(p[1]), wrap(p[2]))
}

// NumTriangles returns how many triangles have been added.
func (c *Canvas) NumTriangles() int {
	return len(c.triangles)
}

// NumTexCoords returns how many texture triples have been added.
func (c *Canvas) NumTexCoords() int {
	return len(c.texCoords)
}

// Triangles returns the accumulated triangles. The slice is only valid
// until the next Clear.
func (c *Canvas) Triangles() []Triangle {
	return c.triangles
}

// TexCoords returns the accumulated texture triples. The slice is only
// valid until the next Clear.
func (c *Canvas) TexCoords() [][3]TexCoord {
	return c.texCoords
}

// Validate checks the one-triple-per-triangle contract.
func (c *Canvas) Validate() error {
	if len(c.texCoords) != len(c.triangles) {
		return fmt.Errorf("%w: %d triangles, %d texture triples",
			ErrMisalignedTexCoords, len(c.triangles), len(c.texCoords))
	}
	return nil
}

// Mesh copies the canvas contents into an immutable mesh.
func (c *Canvas) Mesh() *Mesh {
	m := &Mesh{
		Triangles: make([]Triangle, len(c.triangles)),
		TexCoords: make([][3]TexCoord, len(c.texCoords)),
	}
	copy(m.Triangles, c.triangles)
	copy(m.TexCoords, c.texCoords)
	return m
}
