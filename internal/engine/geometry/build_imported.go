package geometry

// indexedTables is a pre-authored mesh with separate position and normal
// index streams.
type indexedTables struct {
	vertices      [][3]float32
	normals       [][3]float32
	elements      []uint32
	normalIndices []uint32
}

var (
	teapotTables = indexedTables{
		vertices:      teapotVertices[:],
		normals:       teapotNormals[:],
		elements:      teapotElements[:],
		normalIndices: teapotNormalIndices[:],
	}
	forkTables = indexedTables{
		vertices:      forkVertices[:],
		normals:       forkNormals[:],
		elements:      forkElements[:],
		normalIndices: forkNormalIndices[:],
	}
)

// emit copies every triangle accepted by keep onto the canvas.
func (t indexedTables) emit(c *Canvas, keep func(p [3]Vertex) bool) {
	for i := 0; i+2 < len(t.elements); i += 3 {
		p := [3]Vertex{
			vertexAt(t.vertices, t.elements[i]),
			vertexAt(t.vertices, t.elements[i+1]),
			vertexAt(t.vertices, t.elements[i+2]),
		}
		if keep != nil && !keep(p) {
			continue
		}
		n := [3]Normal{
			vertexAt(t.normals, t.normalIndices[i]),
			vertexAt(t.normals, t.normalIndices[i+1]),
			vertexAt(t.normals, t.normalIndices[i+2]),
		}
		c.addMapped(p, n, PassThrough)
	}
}

// BuildTeapot emits the teapot tables unchanged.
func BuildTeapot(c *Canvas) {
	teapotTables.emit(c, nil)
}

// BuildLeftTeapot emits only teapot triangles lying entirely in x <= 0.
func BuildLeftTeapot(c *Canvas) {
	teapotTables.emit(c, func(p [3]Vertex) bool {
		return p[0].X <= 0 && p[1].X <= 0 && p[2].X <= 0
	})
}

// BuildFork emits the fork tables unchanged.
func BuildFork(c *Canvas) {
	forkTables.emit(c, nil)
}
