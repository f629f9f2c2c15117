package geometry

import "github.com/Faultbox/texscene/pkg/math"

type cubeFace struct {
	span   Range
	normal Normal
}

var cubeFaces = [6]cubeFace{
	{cubeRightFace, math.Vec3{X: 1}},
	{cubeLeftFace, math.Vec3{X: -1}},
	{cubeTopFace, math.Vec3{Y: 1}},
	{cubeBottomFace, math.Vec3{Y: -1}},
	{cubeFrontFace, math.Vec3{Z: 1}},
	{cubeBackFace, math.Vec3{Z: -1}},
}

// BuildCube emits the six tessellated faces with flat normals and tiled
// cube-projected coordinates.
func BuildCube(c *Canvas) {
	for _, f := range cubeFaces {
		emitRange(c, cubeVertices[:], cubeElements[:], f.span, constNormal(f.normal), WrapCube)
	}
}
