package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/texscene/internal/assets"
	"github.com/Faultbox/texscene/internal/engine/geometry"
)

func TestEmbeddedDescription(t *testing.T) {
	d, err := ParseDescription(assets.SceneDescription())
	require.NoError(t, err)

	require.Len(t, d.Objects, int(geometry.NumShapes))
	for i, o := range d.Objects {
		s, err := geometry.ParseShape(o.Shape)
		require.NoError(t, err)
		assert.Equal(t, geometry.Shape(i), s, "objects are listed in draw order")
	}

	assert.Len(t, d.Textures, 10)
	assert.Equal(t, float32(-50), d.Light.Bounce.Min)
	assert.Equal(t, float32(50), d.Light.Bounce.Max)
	assert.Equal(t, float32(1), d.Light.Bounce.Delta)
	assert.Equal(t, float32(0.7), d.Material.KCoeff.Y())
}

func TestEmbeddedPrograms(t *testing.T) {
	d, err := ParseDescription(assets.SceneDescription())
	require.NoError(t, err)

	phong := map[string]bool{
		"Sphere": true, "Sphere2": true, "Sphere3": true,
		"Prism": true, "Prism2": true, "Teapot": true, "Fork": true,
	}
	for _, o := range d.Objects {
		want := "texture"
		if phong[o.Shape] {
			want = "phong"
		}
		assert.Equal(t, want, o.Program, o.Shape)
	}
}

func TestAngleYAML(t *testing.T) {
	var angles [3]Angle
	require.NoError(t, yaml.Unmarshal([]byte(`[anim, 30, -12.5]`), &angles))

	assert.Equal(t, Anim, angles[0])
	assert.Equal(t, Fixed(30), angles[1])
	assert.Equal(t, Fixed(-12.5), angles[2])

	out, err := yaml.Marshal(angles)
	require.NoError(t, err)
	assert.Contains(t, string(out), "anim")

	assert.Error(t, yaml.Unmarshal([]byte(`[spin, 0, 0]`), &angles))
	assert.Error(t, yaml.Unmarshal([]byte(`[[1], 0, 0]`), &angles))
}

func TestAngleResolve(t *testing.T) {
	assert.Equal(t, float32(42), Anim.Resolve(42))
	assert.Equal(t, float32(220), Fixed(220).Resolve(42))
}

func TestParseDescriptionErrors(t *testing.T) {
	base := string(assets.SceneDescription())

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown field",
			doc:     base + "\nextra: 1\n",
			wantErr: "extra",
		},
		{
			name:    "missing shapes",
			doc:     "objects:\n  - {shape: Cylinder, program: texture}\n",
			wantErr: "missing",
		},
		{
			name:    "unknown shape",
			doc:     strings.Replace(base, "shape: Fork", "shape: Spoon", 1),
			wantErr: "Spoon",
		},
		{
			name:    "duplicate shape",
			doc:     strings.Replace(base, "shape: Fork", "shape: Teapot", 1),
			wantErr: "duplicate",
		},
		{
			name:    "bad program",
			doc:     strings.Replace(base, "program: phong", "program: toon", 1),
			wantErr: "toon",
		},
		{
			name:    "texture unit out of range",
			doc:     strings.Replace(base, "texture_unit: 3", "texture_unit: 99", 1),
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescription([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
