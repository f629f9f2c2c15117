package buffers

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrNoBuffer is returned when GL hands back a zero object name.
var ErrNoBuffer = errors.New("gl returned no buffer object")

// AttribLocator resolves a shader input name to its location, -1 when the
// program has no such active input.
type AttribLocator = interface {
	AttribLocation(name string) int32
}

// BufferSet is a GL-resident mesh: a vertex array, one array buffer with
// the attribute blocks and one element buffer.
type BufferSet struct {
	vao          uint32
	vbo          uint32
	ebo          uint32
	layout       Layout
	elementCount int32
}

// Upload creates GL objects for p. Requires a current GL context.
func Upload(p *Packed) (*BufferSet, error) {
	if len(p.Indices) == 0 {
		return nil, errors.New("upload: empty mesh")
	}

	b := &BufferSet{layout: p.Layout(), elementCount: p.ElementCount()}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)
	if b.vao == 0 || b.vbo == 0 || b.ebo == 0 {
		b.Delete()
		return nil, fmt.Errorf("upload: %w", ErrNoBuffer)
	}

	gl.BindVertexArray(b.vao)

	data := p.Interleave()
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.Indices)*4, gl.Ptr(p.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return b, nil
}

// Select binds the buffers and points the named shader inputs at their
// blocks. Inputs the program does not use are skipped.
func (b *BufferSet) Select(prog AttribLocator, a Attribs) {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	if a.TexCoord == "" {
		if loc := prog.AttribLocation(DefaultAttribs.TexCoord); loc >= 0 {
			gl.DisableVertexAttribArray(uint32(loc))
		}
	}

	for _, bind := range b.layout.Plan(a) {
		loc := prog.AttribLocation(bind.Name)
		if loc < 0 {
			continue
		}
		gl.VertexAttribPointerWithOffset(uint32(loc), bind.Components, gl.FLOAT, false, 0, uintptr(bind.Offset))
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

// Bind selects the buffers with or without texture coordinates.
func (b *BufferSet) Bind(prog AttribLocator, textured bool) {
	b.Select(prog, AttribsFor(textured))
}

// Draw issues the indexed draw for the whole mesh. Select must be called
// first.
func (b *BufferSet) Draw() {
	gl.DrawElements(gl.TRIANGLES, b.elementCount, gl.UNSIGNED_INT, nil)
}

// ElementCount returns the number of indices drawn.
func (b *BufferSet) ElementCount() int32 {
	return b.elementCount
}

// Delete releases the GL objects. Safe to call more than once.
func (b *BufferSet) Delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}
