// Package geometry synthesizes triangle meshes and texture coordinates for
// the fixed shape catalog drawn by the scene.
package geometry

import "github.com/Faultbox/texscene/pkg/math"

// Vertex is a point on a shape surface.
type Vertex = math.Vec3

// Normal is a surface direction attached to a vertex.
type Normal = math.Vec3

// TexCoord is a 2D texture coordinate. Most shapes stay inside [0,1]; the
// cylindrical and spherical mappings may leave it or be non-finite.
type TexCoord struct {
	U, V float32
}

// Triangle is an ordered triple of vertices with their normals.
// Winding is taken from the source index table.
type Triangle struct {
	Vertices [3]Vertex
	Normals  [3]Normal
}

// Range is an inclusive span of a shape's element table.
type Range struct {
	First int
	Last  int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.Last - r.First + 1
}

// Mesh is an immutable snapshot of a built shape.
// TexCoords[i] belongs to Triangles[i].
type Mesh struct {
	Triangles []Triangle
	TexCoords [][3]TexCoord
}

// NumTriangles returns the triangle count.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// NumVertices returns the flattened vertex count (three per triangle).
func (m *Mesh) NumVertices() int {
	return 3 * len(m.Triangles)
}

// Aligned reports whether every triangle has exactly one texture triple.
func (m *Mesh) Aligned() bool {
	return len(m.TexCoords) == len(m.Triangles)
}

func vertexAt(table [][3]float32, idx uint32) Vertex {
	return math.Vec3FromArray(table[idx])
}
