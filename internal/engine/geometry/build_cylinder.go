package geometry

import "github.com/Faultbox/texscene/pkg/math"

// Builder fills a cleared canvas with one shape.
type Builder func(c *Canvas)

// BuildCylinder emits the cylinder side. Normals are radial and left
// unnormalized.
func BuildCylinder(c *Canvas) {
	emitRange(c, cylinderVertices[:], cylinderElements[:], cylinderBody, Vertex.DropY, WrapSide)
}

// BuildDiscs emits the bottom and top caps of the cylinder.
func BuildDiscs(c *Canvas) {
	down := math.Vec3{Y: -1}
	up := math.Vec3{Y: 1}
	emitRange(c, cylinderVertices[:], cylinderElements[:], cylinderBottomDisc, constNormal(down), WrapDisc)
	emitRange(c, cylinderVertices[:], cylinderElements[:], cylinderTopDisc, constNormal(up), WrapDisc)
}

// emitRange walks an inclusive element range three indices at a time.
func emitRange(c *Canvas, verts [][3]float32, elems []uint32, r Range, normal func(Vertex) Normal, wrap Parameterizer) {
	for i := r.First; i+2 <= r.Last; i += 3 {
		p := [3]Vertex{
			vertexAt(verts, elems[i]),
			vertexAt(verts, elems[i+1]),
			vertexAt(verts, elems[i+2]),
		}
		c.addMapped(p, [3]Normal{normal(p[0]), normal(p[1]), normal(p[2])}, wrap)
	}
}

func constNormal(n Normal) func(Vertex) Normal {
	return func(Vertex) Normal { return n }
}
