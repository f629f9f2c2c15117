package geometry

func sphereNormal(v Vertex) Normal {
	return v.Normalize()
}

// BuildSphere emits the whole sphere with smooth normals.
func BuildSphere(c *Canvas) {
	whole := Range{First: 0, Last: len(sphereElements) - 1}
	emitRange(c, sphereVertices[:], sphereElements[:], whole, sphereNormal, WrapSphere)
}

// BuildHemisphere emits the lower half of the sphere. Triangles with any
// vertex above y = 0 are skipped, not clipped, so the rim is jagged.
func BuildHemisphere(c *Canvas) {
	for i := 0; i+2 < len(sphereElements); i += 3 {
		p := [3]Vertex{
			vertexAt(sphereVertices[:], sphereElements[i]),
			vertexAt(sphereVertices[:], sphereElements[i+1]),
			vertexAt(sphereVertices[:], sphereElements[i+2]),
		}
		if p[0].Y > 0 || p[1].Y > 0 || p[2].Y > 0 {
			continue
		}
		c.addMapped(p, [3]Normal{sphereNormal(p[0]), sphereNormal(p[1]), sphereNormal(p[2])}, WrapHemisphere)
	}
}
