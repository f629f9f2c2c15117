// Package scene holds the drawable objects of the table scene, their
// animation state and the key bindings that drive them.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/texscene/internal/engine/camera"
	"github.com/Faultbox/texscene/internal/engine/geometry"
	"github.com/Faultbox/texscene/internal/engine/lighting"
)

// MaxTextureUnits bounds the texture units a description may use.
const MaxTextureUnits = 16

const animKeyword = "anim"

// Angle is one rotation component: either a fixed number of degrees or the
// object's live animated angle.
type Angle struct {
	Animated bool
	Degrees  float32
}

// Anim is the animated angle.
var Anim = Angle{Animated: true}

// Fixed returns a constant angle.
func Fixed(deg float32) Angle {
	return Angle{Degrees: deg}
}

// Resolve returns the angle in degrees given the live animated value.
func (a Angle) Resolve(live float32) float32 {
	if a.Animated {
		return live
	}
	return a.Degrees
}

// UnmarshalYAML accepts "anim" or a number.
func (a *Angle) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: angle must be a number or %q", n.Line, animKeyword)
	}
	if n.Value == animKeyword {
		*a = Anim
		return nil
	}
	f, err := strconv.ParseFloat(n.Value, 32)
	if err != nil {
		return fmt.Errorf("line %d: angle %q: want a number or %q", n.Line, n.Value, animKeyword)
	}
	*a = Fixed(float32(f))
	return nil
}

// MarshalYAML writes "anim" or the number.
func (a Angle) MarshalYAML() (any, error) {
	if a.Animated {
		return animKeyword, nil
	}
	return a.Degrees, nil
}

// ObjectSpec describes one scene object.
type ObjectSpec struct {
	Shape       string     `yaml:"shape"`
	Program     string     `yaml:"program"`
	TextureUnit int        `yaml:"texture_unit"`
	SpecExp     float32    `yaml:"spec_exp"`
	Ambient     mgl32.Vec4 `yaml:"ambient"`
	Diffuse     mgl32.Vec4 `yaml:"diffuse"`
	Scale       mgl32.Vec3 `yaml:"scale"`
	Translate   mgl32.Vec3 `yaml:"translate"`
	Angles      [3]Angle   `yaml:"angles"`
}

// TextureSpec binds an image file to a texture unit.
type TextureSpec struct {
	Unit uint32 `yaml:"unit"`
	File string `yaml:"file"`
}

// LightSpec is the light's default state and its sweep.
type LightSpec struct {
	lighting.PointLight `yaml:",inline"`
	Bounce              lighting.Bouncer `yaml:"bounce"`
}

// MaterialSpec holds material terms shared by every object.
type MaterialSpec struct {
	KCoeff   mgl32.Vec3 `yaml:"k_coeff"`
	Specular mgl32.Vec4 `yaml:"specular"`
}

// Description is the full static scene.
type Description struct {
	Camera   camera.Camera `yaml:"camera"`
	Light    LightSpec     `yaml:"light"`
	Material MaterialSpec  `yaml:"material"`
	Textures []TextureSpec `yaml:"textures"`
	Objects  []ObjectSpec  `yaml:"objects"`
}

// ParseDescription decodes and validates a scene description. Unknown
// fields are rejected.
func ParseDescription(data []byte) (*Description, error) {
	d := &Description{
		Camera: camera.Default(),
		Light: LightSpec{
			PointLight: lighting.DefaultPointLight(),
			Bounce:     lighting.DefaultBouncer(),
		},
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("parsing scene description: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that every catalog shape appears exactly once and that
// programs and texture units are usable.
func (d *Description) Validate() error {
	var errs []error
	var seen [geometry.NumShapes]bool

	for i, o := range d.Objects {
		s, err := geometry.ParseShape(o.Shape)
		if err != nil {
			errs = append(errs, fmt.Errorf("object %d: %w", i, err))
			continue
		}
		if seen[s] {
			errs = append(errs, fmt.Errorf("object %d: duplicate shape %v", i, s))
		}
		seen[s] = true

		p, err := ParseProgram(o.Program)
		if err != nil {
			errs = append(errs, fmt.Errorf("object %v: %w", s, err))
		}
		if p == ProgramTexture && (o.TextureUnit < 0 || o.TextureUnit >= MaxTextureUnits) {
			errs = append(errs, fmt.Errorf("object %v: texture unit %d out of range", s, o.TextureUnit))
		}
	}
	for s, ok := range seen {
		if !ok {
			errs = append(errs, fmt.Errorf("shape %v missing", geometry.Shape(s)))
		}
	}
	for _, t := range d.Textures {
		if t.Unit >= MaxTextureUnits {
			errs = append(errs, fmt.Errorf("texture %s: unit %d out of range", t.File, t.Unit))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid scene description: %w", errors.Join(errs...))
	}
	return nil
}
