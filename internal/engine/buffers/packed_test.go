package buffers

import (
	"errors"
	"testing"

	"github.com/Faultbox/texscene/internal/engine/geometry"
)

func buildMesh(t *testing.T, s geometry.Shape) *geometry.Mesh {
	t.Helper()
	c := geometry.NewCanvas()
	geometry.Create(c, s)
	return c.Mesh()
}

func TestPackCounts(t *testing.T) {
	tests := []struct {
		shape geometry.Shape
	}{
		{geometry.Cylinder},
		{geometry.Discs},
		{geometry.Cube},
		{geometry.Prism},
		{geometry.Fork},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			m := buildMesh(t, tt.shape)
			p, err := Pack(m)
			if err != nil {
				t.Fatalf("Pack: %v", err)
			}

			if got, want := p.ElementCount(), int32(3*m.NumTriangles()); got != want {
				t.Errorf("ElementCount = %d, want %d", got, want)
			}
			if got, want := len(p.Positions), 9*m.NumTriangles(); got != want {
				t.Errorf("positions = %d floats, want %d", got, want)
			}
			if got, want := len(p.Normals), len(p.Positions); got != want {
				t.Errorf("normals = %d floats, want %d", got, want)
			}
			if got, want := len(p.TexCoords), 6*m.NumTriangles(); got != want {
				t.Errorf("texcoords = %d floats, want %d", got, want)
			}
			for i, idx := range p.Indices {
				if idx != uint32(i) {
					t.Fatalf("Indices[%d] = %d", i, idx)
				}
			}
		})
	}
}

func TestPackOrder(t *testing.T) {
	m := buildMesh(t, geometry.Prism)
	p, err := Pack(m)
	if err != nil {
		t.Fatal(err)
	}

	second := m.Triangles[0].Vertices[1]
	got := [3]float32{p.Positions[3], p.Positions[4], p.Positions[5]}
	if got != second.Array() {
		t.Errorf("second packed position = %v, want %v", got, second)
	}

	last := m.Triangles[len(m.Triangles)-1].Normals[2]
	n := len(p.Normals)
	got = [3]float32{p.Normals[n-3], p.Normals[n-2], p.Normals[n-1]}
	if got != last.Array() {
		t.Errorf("last packed normal = %v, want %v", got, last)
	}
}

func TestPackMisaligned(t *testing.T) {
	m := buildMesh(t, geometry.Cube)
	m.TexCoords = m.TexCoords[:len(m.TexCoords)-1]

	if _, err := Pack(m); !errors.Is(err, geometry.ErrMisalignedTexCoords) {
		t.Errorf("Pack error = %v, want ErrMisalignedTexCoords", err)
	}
}

func TestPackSharedMesh(t *testing.T) {
	lib := geometry.NewLibrary(nil)
	m, err := lib.Mesh(geometry.Cube)
	if err != nil {
		t.Fatal(err)
	}
	before := m.Triangles[0]

	a, err := Pack(m)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Pack(m)
	if err != nil {
		t.Fatal(err)
	}
	a.Positions[0] = 42

	if b.Positions[0] == 42 {
		t.Error("packed instances share storage")
	}
	if m.Triangles[0] != before {
		t.Error("Pack mutated the shared mesh")
	}
}

func TestLayoutAndInterleave(t *testing.T) {
	p, err := Pack(buildMesh(t, geometry.Prism))
	if err != nil {
		t.Fatal(err)
	}

	n := p.NumVertices()
	if n != 24 {
		t.Fatalf("NumVertices = %d, want 24", n)
	}

	l := p.Layout()
	want := Layout{PositionOffset: 0, NormalOffset: 12 * n, TexCoordOffset: 24 * n, Size: 32 * n}
	if l != want {
		t.Errorf("Layout = %+v, want %+v", l, want)
	}

	data := p.Interleave()
	if len(data)*floatSize != l.Size {
		t.Errorf("interleaved bytes = %d, want %d", len(data)*floatSize, l.Size)
	}
	if data[l.NormalOffset/floatSize] != p.Normals[0] {
		t.Error("normal block not at NormalOffset")
	}
}

func TestLayoutPlan(t *testing.T) {
	l := Layout{PositionOffset: 0, NormalOffset: 120, TexCoordOffset: 240, Size: 320}

	tests := []struct {
		name    string
		attribs Attribs
		want    []Binding
	}{
		{
			name:    "textured",
			attribs: DefaultAttribs,
			want: []Binding{
				{"position", 3, 0},
				{"normal", 3, 120},
				{"texCoord", 2, 240},
			},
		},
		{
			name:    "untextured",
			attribs: DefaultAttribs.Untextured(),
			want: []Binding{
				{"position", 3, 0},
				{"normal", 3, 120},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Plan(tt.attribs)
			if len(got) != len(tt.want) {
				t.Fatalf("Plan() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Plan()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAttribsFor(t *testing.T) {
	if got := AttribsFor(true); got != DefaultAttribs {
		t.Errorf("AttribsFor(true) = %+v, want %+v", got, DefaultAttribs)
	}
	got := AttribsFor(false)
	if got.TexCoord != "" {
		t.Errorf("untextured attribs still bind %q", got.TexCoord)
	}
	if got.Position != DefaultAttribs.Position || got.Normal != DefaultAttribs.Normal {
		t.Errorf("AttribsFor(false) = %+v", got)
	}
}
