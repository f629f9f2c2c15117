package scene

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/texscene/internal/engine/geometry"
	"github.com/Faultbox/texscene/internal/engine/lighting"
)

// KeyEscape is the ASCII ESC rune the input layer reports for Escape.
const KeyEscape rune = 0x1b

// Rotation increments per animation tick, in degrees.
const (
	TeapotSpin   float32 = 2
	CylinderSpin float32 = 1
	LightStep    float32 = 2
)

const helpText = `  Key(s)             Action
=========   =======================
ESC, q, Q   Terminate the program
  h, H      Print this message
  a, A      Toggle all object animations
  s, S      Toggle teapot animation
  c, C      Toggle cylinder animation
  l, L      Toggle light animation
  i, I      Move light toward the objects
  o, O      Move light away from the objects
  p, P      Print light position
  r, R      Print rotation angles
   1        Reset all object rotations
   2        Reset light position
  F12       Save a frame capture`

// Driver advances animation, reacts to keys and tracks whether the frame
// needs to be redrawn.
type Driver struct {
	reg *Registry

	light        lighting.PointLight
	lightDefault lighting.PointLight
	bouncer      lighting.Bouncer
	animateLight bool

	dirty bool
	log   *zap.Logger
}

// NewDriver creates a driver over reg. The first frame is always dirty.
func NewDriver(reg *Registry, light LightSpec, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		reg:          reg,
		light:        light.PointLight,
		lightDefault: light.PointLight,
		bouncer:      light.Bounce,
		dirty:        true,
		log:          log,
	}
}

// Registry returns the objects the driver animates.
func (d *Driver) Registry() *Registry {
	return d.reg
}

// Light returns the light's current state.
func (d *Driver) Light() lighting.PointLight {
	return d.light
}

// Dirty reports whether something changed since the last ClearDirty.
func (d *Driver) Dirty() bool {
	return d.dirty
}

// ClearDirty marks the current state as drawn.
func (d *Driver) ClearDirty() {
	d.dirty = false
}

// Invalidate forces a redraw, e.g. after the window was resized.
func (d *Driver) Invalidate() {
	d.dirty = true
}

// Replace swaps in objects rebuilt from an edited description. Rotation
// angles, animation flags and buffers carry over from the current objects;
// the light keeps its position and sweep direction.
func (d *Driver) Replace(reg *Registry, light LightSpec) {
	for _, o := range reg.All() {
		prev := d.reg.Get(o.Shape)
		o.Angle = prev.Angle
		o.Animating = prev.Animating
		o.Buffers = prev.Buffers
	}
	d.reg = reg

	d.lightDefault = light.PointLight
	d.light.Color = light.Color
	d.light.Ambient = light.Ambient

	delta := light.Bounce.Delta
	if (delta < 0) != (d.bouncer.Delta < 0) {
		delta = -delta
	}
	d.bouncer = light.Bounce
	d.bouncer.Delta = delta

	d.dirty = true
}

// Tick advances one animation step. The cylinder's flag also drives the
// discs, which share its transform.
func (d *Driver) Tick() {
	if d.reg.Get(geometry.Teapot).Animating {
		d.reg.Rotate(geometry.Teapot, TeapotSpin)
		d.dirty = true
	}

	if d.reg.Get(geometry.Cylinder).Animating {
		d.reg.Rotate(geometry.Cylinder, CylinderSpin)
		d.reg.Rotate(geometry.Discs, CylinderSpin)
		d.dirty = true
	}

	if d.animateLight {
		d.light.Position[0] = d.bouncer.Step(d.light.Position[0])
		d.dirty = true
	}
}

// HandleKey applies one key press. It returns true when the key asks the
// viewer to quit. Help, quit and unknown keys leave the frame clean.
func (d *Driver) HandleKey(key rune) (quit bool) {
	switch key {
	case KeyEscape, 'q':
		return true

	case 'a':
		// Object animations only; the light keeps its own toggle.
		d.reg.SetAnimating(!d.reg.AnyAnimating())

	case 's':
		t := d.reg.Get(geometry.Teapot)
		t.Animating = !t.Animating

	case 'c':
		c := d.reg.Get(geometry.Cylinder)
		c.Animating = !c.Animating
		disc := d.reg.Get(geometry.Discs)
		disc.Animating = !disc.Animating

	case 'l':
		d.animateLight = !d.animateLight

	case 'i':
		d.light.Position[2] -= LightStep

	case 'o':
		d.light.Position[2] += LightStep

	case 'r':
		d.log.Info("rotation",
			zap.Float32("teapot", d.reg.Get(geometry.Teapot).Angle),
			zap.Float32("cylinder", d.reg.Get(geometry.Cylinder).Angle))

	case 'p':
		p := d.light.Position
		d.log.Info("light position",
			zap.Float32("x", p[0]), zap.Float32("y", p[1]), zap.Float32("z", p[2]))

	case '1':
		for _, s := range []geometry.Shape{geometry.Teapot, geometry.Cylinder, geometry.Discs} {
			d.reg.Get(s).Angle = 0
		}

	case '2':
		d.light.Position = d.lightDefault.Position

	case 'h':
		d.log.Info("key bindings\n" + helpText)
		return false

	default:
		d.log.Warn("unknown key ignored", zap.Int32("key", key))
		return false
	}

	d.dirty = true
	return false
}

// Title returns the window title listing the texture-mapped primary shapes.
func (d *Driver) Title() string {
	var b strings.Builder
	b.WriteString("Texture mapping:")
	for _, s := range []geometry.Shape{geometry.Cylinder, geometry.Discs, geometry.Sphere, geometry.Cube} {
		if d.reg.Get(s).Mapped {
			b.WriteString(" ")
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// Help returns the key binding summary.
func Help() string {
	return helpText
}
