package math

import "testing"

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", z)
	}
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	a := [3]float32{1, -2, 0.5}
	if got := Vec3FromArray(a).Array(); got != a {
		t.Errorf("Vec3FromArray(%v).Array() = %v", a, got)
	}
}

func TestVec3DropY(t *testing.T) {
	got := Vec3{0.3, -0.5, 0.4}.DropY()
	want := Vec3{0.3, 0, 0.4}
	if got != want {
		t.Errorf("Vec3.DropY() = %v, want %v", got, want)
	}
}
