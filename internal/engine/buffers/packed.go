// Package buffers flattens geometry meshes into GPU vertex and index
// buffers and manages their GL lifetime.
package buffers

import (
	"fmt"

	"github.com/Faultbox/texscene/internal/engine/geometry"
)

const floatSize = 4

// Packed is the flattened CPU form of a mesh. Positions, normals and
// texture coordinates are separate blocks; the blocks are uploaded back to
// back into one array buffer.
type Packed struct {
	Positions []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex
	TexCoords []float32 // 2 per vertex
	Indices   []uint32
}

// Pack flattens m. Every triangle contributes three fresh vertices, so the
// index list is simply 0..n-1.
func Pack(m *geometry.Mesh) (*Packed, error) {
	if !m.Aligned() {
		return nil, fmt.Errorf("pack: %w: %d triangles, %d texture triples",
			geometry.ErrMisalignedTexCoords, len(m.Triangles), len(m.TexCoords))
	}

	n := m.NumVertices()
	p := &Packed{
		Positions: make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		TexCoords: make([]float32, 0, 2*n),
		Indices:   make([]uint32, n),
	}

	for i, tri := range m.Triangles {
		for k := 0; k < 3; k++ {
			v, nm, tc := tri.Vertices[k], tri.Normals[k], m.TexCoords[i][k]
			p.Positions = append(p.Positions, v.X, v.Y, v.Z)
			p.Normals = append(p.Normals, nm.X, nm.Y, nm.Z)
			p.TexCoords = append(p.TexCoords, tc.U, tc.V)
		}
	}
	for i := range p.Indices {
		p.Indices[i] = uint32(i)
	}

	return p, nil
}

// NumVertices returns the number of packed vertices.
func (p *Packed) NumVertices() int {
	return len(p.Positions) / 3
}

// ElementCount returns the number of indices to draw.
func (p *Packed) ElementCount() int32 {
	return int32(len(p.Indices))
}

// Layout returns where each attribute block starts in the array buffer.
func (p *Packed) Layout() Layout {
	n := p.NumVertices()
	return Layout{
		PositionOffset: 0,
		NormalOffset:   3 * floatSize * n,
		TexCoordOffset: 6 * floatSize * n,
		Size:           8 * floatSize * n,
	}
}

// Interleave concatenates the three blocks in upload order.
func (p *Packed) Interleave() []float32 {
	out := make([]float32, 0, len(p.Positions)+len(p.Normals)+len(p.TexCoords))
	out = append(out, p.Positions...)
	out = append(out, p.Normals...)
	return append(out, p.TexCoords...)
}
