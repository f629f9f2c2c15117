package geometry

import (
	"fmt"
	"strings"
)

// Shape tags every object in the scene. The order is the draw order.
type Shape int

const (
	Cylinder Shape = iota
	Discs
	Sphere
	Sphere2
	Sphere3
	Cube
	Cube2
	Cube3
	SemiSphere
	Prism
	Prism2
	Plate
	Plateside
	Bread1
	Bread2
	Bread3
	Teapot
	Cylinder2
	Bread1a
	Bread2a
	Bread3a
	Fork
	Cylinder3
	Cylinder4

	NumShapes
)

var shapeNames = [NumShapes]string{
	"Cylinder", "Discs", "Sphere", "Sphere2", "Sphere3",
	"Cube", "Cube2", "Cube3", "SemiSphere", "Prism", "Prism2",
	"Plate", "Plateside", "Bread1", "Bread2", "Bread3", "Teapot",
	"Cylinder2", "Bread1a", "Bread2a", "Bread3a", "Fork",
	"Cylinder3", "Cylinder4",
}

// String returns the shape's catalog name.
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is a catalog entry.
func (s Shape) Valid() bool {
	return s >= 0 && s < NumShapes
}

// ParseShape resolves a catalog name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Shapes returns every catalog entry in draw order.
func Shapes() []Shape {
	out := make([]Shape, NumShapes)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// Family identifies the builder a shape is produced by. Shapes of the same
// family share one mesh.
type Family int

const (
	FamilyCylinder Family = iota
	FamilyDiscs
	FamilySphere
	FamilyHemisphere
	FamilyCube
	FamilyPrism
	FamilyTeapot
	FamilyLeftTeapot
	FamilyFork

	NumFamilies
)

func (f Family) String() string {
	switch f {
	case FamilyCylinder:
		return "cylinder"
	case FamilyDiscs:
		return "discs"
	case FamilySphere:
		return "sphere"
	case FamilyHemisphere:
		return "hemisphere"
	case FamilyCube:
		return "cube"
	case FamilyPrism:
		return "prism"
	case FamilyTeapot:
		return "teapot"
	case FamilyLeftTeapot:
		return "left-teapot"
	case FamilyFork:
		return "fork"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Builder returns the function that builds this family.
func (f Family) Builder() Builder {
	switch f {
	case FamilyCylinder:
		return BuildCylinder
	case FamilyDiscs:
		return BuildDiscs
	case FamilySphere:
		return BuildSphere
	case FamilyHemisphere:
		return BuildHemisphere
	case FamilyCube:
		return BuildCube
	case FamilyPrism:
		return BuildPrism
	case FamilyTeapot:
		return BuildTeapot
	case FamilyLeftTeapot:
		return BuildLeftTeapot
	case FamilyFork:
		return BuildFork
	}
	panic(fmt.Sprintf("geometry: no builder for %v", f))
}

// Family maps a shape to its builder family.
func (s Shape) Family() Family {
	switch s {
	case Cylinder, Cylinder2, Cylinder3:
		return FamilyCylinder
	case Discs:
		return FamilyDiscs
	case Sphere, Sphere2, Sphere3:
		return FamilySphere
	case SemiSphere:
		return FamilyHemisphere
	case Cube, Cube2, Cube3, Plate, Plateside,
		Bread1, Bread2, Bread3, Bread1a, Bread2a, Bread3a:
		return FamilyCube
	case Prism, Prism2:
		return FamilyPrism
	case Teapot:
		return FamilyTeapot
	case Cylinder4:
		return FamilyLeftTeapot
	case Fork:
		return FamilyFork
	}
	panic(fmt.Sprintf("geometry: unknown shape %v", s))
}

// Builder returns the builder for the shape's family.
func (s Shape) Builder() Builder {
	return s.Family().Builder()
}

// Create clears the canvas and builds s into it.
func Create(c *Canvas, s Shape) {
	c.Clear()
	s.Builder()(c)
}
