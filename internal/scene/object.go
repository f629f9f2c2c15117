package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/texscene/internal/engine/geometry"
)

// Program selects the shader an object is drawn with.
type Program int

const (
	ProgramPhong Program = iota
	ProgramTexture

	NumPrograms
)

func (p Program) String() string {
	switch p {
	case ProgramPhong:
		return "phong"
	case ProgramTexture:
		return "texture"
	}
	return fmt.Sprintf("Program(%d)", int(p))
}

// ParseProgram resolves a program name.
func ParseProgram(name string) (Program, error) {
	switch name {
	case "phong":
		return ProgramPhong, nil
	case "texture":
		return ProgramTexture, nil
	}
	return 0, fmt.Errorf("unknown program %q", name)
}

// Material is an object's lighting response.
type Material struct {
	SpecExp     float32
	Ambient     mgl32.Vec4
	Diffuse     mgl32.Vec4
	TextureUnit int
}

// Drawable is GPU-resident geometry an object draws with. The object does
// not own it.
type Drawable interface {
	// Bind prepares the geometry for prog, binding texture coordinates
	// only when textured is set.
	Bind(prog AttribLocator, textured bool)
	Draw()
	ElementCount() int32
}

// AttribLocator resolves shader input locations.
type AttribLocator = interface {
	AttribLocation(name string) int32
}

// Object is one instance in the scene.
type Object struct {
	Shape     geometry.Shape
	Program   Program
	Material  Material
	Scale     mgl32.Vec3
	Translate mgl32.Vec3
	Angles    [3]Angle

	// Angle is the live rotation in degrees, always in [0, 360).
	Angle     float32
	Animating bool
	// Mapped objects bind texture coordinates when drawn.
	Mapped bool

	Buffers Drawable
}

// Rotation returns the x, y, z rotation in degrees for the current frame.
func (o *Object) Rotation() mgl32.Vec3 {
	return mgl32.Vec3{
		o.Angles[0].Resolve(o.Angle),
		o.Angles[1].Resolve(o.Angle),
		o.Angles[2].Resolve(o.Angle),
	}
}

// ModelMatrix returns T * Rz * Ry * Rx * S.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	r := o.Rotation()
	return mgl32.Translate3D(o.Translate.X(), o.Translate.Y(), o.Translate.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(r.Z()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(r.Y()))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(r.X()))).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// Rotate adds amt degrees to the angle, wrapping to exactly 0 once it
// reaches 360.
func Rotate(angle, amt float32) float32 {
	angle += amt
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// Registry owns every scene object, indexed by shape.
type Registry struct {
	objects [geometry.NumShapes]*Object
}

// NewRegistry builds objects from a validated description. mapped selects
// which shapes bind texture coordinates.
func NewRegistry(d *Description, mapped [geometry.NumShapes]bool) (*Registry, error) {
	r := &Registry{}
	for _, spec := range d.Objects {
		s, err := geometry.ParseShape(spec.Shape)
		if err != nil {
			return nil, err
		}
		p, err := ParseProgram(spec.Program)
		if err != nil {
			return nil, fmt.Errorf("object %v: %w", s, err)
		}
		r.objects[s] = &Object{
			Shape:   s,
			Program: p,
			Material: Material{
				SpecExp:     spec.SpecExp,
				Ambient:     spec.Ambient,
				Diffuse:     spec.Diffuse,
				TextureUnit: spec.TextureUnit,
			},
			Scale:     spec.Scale,
			Translate: spec.Translate,
			Angles:    spec.Angles,
			Mapped:    mapped[s],
		}
	}
	for s, o := range r.objects {
		if o == nil {
			return nil, fmt.Errorf("shape %v has no object", geometry.Shape(s))
		}
	}
	return r, nil
}

// Get returns the object for a shape.
func (r *Registry) Get(s geometry.Shape) *Object {
	return r.objects[s]
}

// All returns every object in draw order.
func (r *Registry) All() []*Object {
	return r.objects[:]
}

// Rotate advances one object's angle.
func (r *Registry) Rotate(s geometry.Shape, amt float32) {
	o := r.objects[s]
	o.Angle = Rotate(o.Angle, amt)
}

// AnyAnimating reports whether any object is animating.
func (r *Registry) AnyAnimating() bool {
	for _, o := range r.objects {
		if o.Animating {
			return true
		}
	}
	return false
}

// SetAnimating sets every object's animation flag.
func (r *Registry) SetAnimating(on bool) {
	for _, o := range r.objects {
		o.Animating = on
	}
}
