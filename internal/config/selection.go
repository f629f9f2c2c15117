package config

import "github.com/Faultbox/texscene/internal/engine/geometry"

// Selection marks which catalog shapes are texture mapped.
type Selection [geometry.NumShapes]bool

// ParseSelection interprets one-letter object codes. Only the first byte of
// each argument counts: c maps the cylinder, d the discs, q the sphere and
// x nothing. Any recognized code turns off the map-everything default.
// Unrecognized arguments are returned so the caller can warn about them;
// they do not affect the default.
func ParseSelection(args []string) (sel Selection, ignored []string) {
	mapAll := true
	for _, arg := range args {
		var code byte
		if arg != "" {
			code = arg[0]
		}
		switch code {
		case 'c':
			mapAll = false
			sel[geometry.Cylinder] = true
		case 'd':
			mapAll = false
			sel[geometry.Discs] = true
		case 'q':
			mapAll = false
			sel[geometry.Sphere] = true
		case 'x':
			mapAll = false
		default:
			ignored = append(ignored, arg)
		}
	}

	if mapAll {
		for i := range sel {
			sel[i] = true
		}
	}
	return sel, ignored
}

// TextureSelection resolves the configured texture map.
func (c *Config) TextureSelection() (Selection, []string) {
	return ParseSelection(c.Scene.TextureMap)
}
