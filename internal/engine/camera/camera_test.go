package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := Default()
	got := c.ViewMatrix().Mul4x1(c.Eye.Vec4(1))
	if !got.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("eye maps to %v, want origin", got)
	}
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := Default()
	got := c.ViewMatrix().Mul4x1(c.Center.Vec4(1)).Vec3()
	if got.X() > 1e-4 || got.X() < -1e-4 || got.Z() >= 0 {
		t.Errorf("center maps to %v, want point on -z axis", got)
	}
}

func TestProjectionAspect(t *testing.T) {
	c := Default()
	wide := c.ProjectionMatrix(1500, 1200)
	square := c.ProjectionMatrix(100, 0)

	if wide[0] >= square[0] {
		t.Errorf("wider viewport should shrink x scale: %v vs %v", wide[0], square[0])
	}
	if wide[5] != square[5] {
		t.Errorf("y scale depends only on fovy: %v vs %v", wide[5], square[5])
	}
}
