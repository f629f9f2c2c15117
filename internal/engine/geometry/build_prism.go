package geometry

import "github.com/Faultbox/texscene/pkg/math"

// Right triangular prism: legs along x and z, extruded along y.
var (
	prismA = math.Vec3{}
	prismB = math.Vec3{X: 1}
	prismC = math.Vec3{Z: 1}
	prismD = math.Vec3{Y: 1}
	prismE = math.Vec3{X: 1, Y: 1}
	prismF = math.Vec3{Y: 1, Z: 1}
)

// BuildPrism emits eight triangles over the prism's five planar faces.
// The prism is never texture mapped; zero coordinates keep the canvas
// aligned.
func BuildPrism(c *Canvas) {
	slant := math.Vec3{X: 1, Z: 1}.Normalize()
	faces := []struct {
		p [3]Vertex
		n Normal
	}{
		{[3]Vertex{prismA, prismB, prismC}, math.Vec3{Y: -1}},
		{[3]Vertex{prismD, prismE, prismF}, math.Vec3{Y: 1}},
		{[3]Vertex{prismA, prismD, prismB}, math.Vec3{Z: -1}},
		{[3]Vertex{prismB, prismD, prismE}, math.Vec3{Z: -1}},
		{[3]Vertex{prismA, prismC, prismD}, math.Vec3{X: -1}},
		{[3]Vertex{prismC, prismF, prismD}, math.Vec3{X: -1}},
		{[3]Vertex{prismB, prismE, prismC}, slant},
		{[3]Vertex{prismC, prismE, prismF}, slant},
	}
	for _, f := range faces {
		c.addMapped(f.p, [3]Normal{f.n, f.n, f.n}, PassThrough)
	}
}
