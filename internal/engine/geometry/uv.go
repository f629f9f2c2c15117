package geometry

import (
	stdmath "math"

	"github.com/chewxy/math32"
)

// CubeTileScale is how many times the cube texture repeats across a face.
const CubeTileScale float32 = 5

const pi float32 = stdmath.Pi

// Parameterizer maps a point on a canonical surface to a texture coordinate.
type Parameterizer func(Vertex) TexCoord

// WrapSide maps a point on the cylinder side. There is no seam handling at
// the atan discontinuity, and z == 0 yields whatever atan(x/0) produces.
func WrapSide(v Vertex) TexCoord {
	phi := math32.Atan(v.X / v.Z)
	return TexCoord{
		U: phi / pi,
		V: 1 - (v.Y + 0.5),
	}
}

// WrapDisc maps a point on a cylinder cap (constant y) with a planar
// projection of x and z.
func WrapDisc(v Vertex) TexCoord {
	return TexCoord{
		U: v.X + 0.5,
		V: 1 - (v.Z + 0.5),
	}
}

// WrapSphere maps a point on the radius-0.5 sphere. The u term is pi/phi,
// not phi/pi, and is unbounded where atan(x/z) approaches zero.
func WrapSphere(v Vertex) TexCoord {
	phi := math32.Atan(v.X / v.Z)
	theta := math32.Acos(clampUnit(v.Y * 2))
	return TexCoord{
		U: pi / phi,
		V: 1 - theta/pi,
	}
}

// WrapHemisphere maps a point on the lower half of the sphere.
func WrapHemisphere(v Vertex) TexCoord {
	phi := math32.Atan(v.X / v.Z)
	theta := math32.Acos(clampUnit(-v.Y))
	return TexCoord{
		U: pi / phi,
		V: 1 - theta/(pi/2),
	}
}

// WrapCube projects a cube point onto the face of its dominant axis and
// tiles the result CubeTileScale times. Ties resolve x, then y, then z.
func WrapCube(v Vertex) TexCoord {
	m := math32.Max(math32.Abs(v.X), math32.Max(math32.Abs(v.Y), math32.Abs(v.Z)))

	var u, w float32
	switch m {
	case math32.Abs(v.X):
		u = v.Z/m*0.5 + 0.5
		w = v.Y/m*0.5 + 0.5
	case math32.Abs(v.Y):
		u = v.X/m*0.5 + 0.5
		w = v.Z/m*0.5 + 0.5
	default:
		u = v.X/m*0.5 + 0.5
		w = v.Y/m*0.5 + 0.5
	}

	return TexCoord{
		U: u * CubeTileScale,
		V: (1 - w) * CubeTileScale,
	}
}

// PassThrough is used by shapes that carry no generated coordinates.
func PassThrough(Vertex) TexCoord {
	return TexCoord{}
}

// DominantAxis returns 0, 1 or 2 for the axis with the largest magnitude,
// using the same tie order as WrapCube.
func DominantAxis(v Vertex) int {
	m := math32.Max(math32.Abs(v.X), math32.Max(math32.Abs(v.Y), math32.Abs(v.Z)))
	switch m {
	case math32.Abs(v.X):
		return 0
	case math32.Abs(v.Y):
		return 1
	default:
		return 2
	}
}

func clampUnit(x float32) float32 {
	return math32.Max(-1, math32.Min(1, x))
}
