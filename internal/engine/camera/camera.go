// Package camera provides the fixed viewpoint the scene is drawn from.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a fixed look-at camera with a perspective projection.
type Camera struct {
	Eye    mgl32.Vec3 `yaml:"eye"`
	Center mgl32.Vec3 `yaml:"center"`
	Up     mgl32.Vec3 `yaml:"up"`

	FovY float32 `yaml:"fovy"` // degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Default returns the camera framing the table scene.
func Default() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1.5, 5.5},
		Center: mgl32.Vec3{0, 0.5, -1},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   60,
		Near:   0.9,
		Far:    50,
	}
}

// ViewMatrix returns the world-to-eye transform.
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport of the
// given size. A zero height is treated as square.
func (c Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}
