// Package lighting provides the scene's point light and its animation.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// PointLight is the single light used by both shader programs.
type PointLight struct {
	Position mgl32.Vec4 `yaml:"position"`
	Color    mgl32.Vec4 `yaml:"color"`
	Ambient  mgl32.Vec4 `yaml:"ambient"`
}

// DefaultPointLight returns the light's reset state.
func DefaultPointLight() PointLight {
	return PointLight{
		Position: mgl32.Vec4{0, 5, 2, 1},
		Color:    mgl32.Vec4{1, 1, 1, 1},
		Ambient:  mgl32.Vec4{0.5, 0.5, 0.5, 1},
	}
}

// Bouncer moves a coordinate back and forth between Min and Max.
type Bouncer struct {
	Min   float32 `yaml:"min"`
	Max   float32 `yaml:"max"`
	Delta float32 `yaml:"delta"`
}

// DefaultBouncer sweeps the light's x between -50 and 50, one unit a tick.
func DefaultBouncer() Bouncer {
	return Bouncer{Min: -50, Max: 50, Delta: 1}
}

// Step advances x by one tick. The direction flips first when x has
// reached the bound it is moving toward, so x overshoots by at most one
// step.
func (b *Bouncer) Step(x float32) float32 {
	if (b.Delta > 0 && x >= b.Max) || (b.Delta < 0 && x <= b.Min) {
		b.Delta = -b.Delta
	}
	return x + b.Delta
}
