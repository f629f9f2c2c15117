package buffers

// Layout holds byte offsets of the attribute blocks inside one array buffer.
type Layout struct {
	PositionOffset int
	NormalOffset   int
	TexCoordOffset int
	Size           int
}

// Attribs names the shader inputs a buffer set is bound to. An empty
// TexCoord leaves texture coordinates unbound.
type Attribs struct {
	Position string
	Normal   string
	TexCoord string
}

// DefaultAttribs are the input names used by the bundled shaders.
var DefaultAttribs = Attribs{Position: "position", Normal: "normal", TexCoord: "texCoord"}

// Untextured returns a copy of a with the texture coordinate binding removed.
func (a Attribs) Untextured() Attribs {
	a.TexCoord = ""
	return a
}

// AttribsFor returns DefaultAttribs, without the texture coordinate input
// unless textured is set.
func AttribsFor(textured bool) Attribs {
	if textured {
		return DefaultAttribs
	}
	return DefaultAttribs.Untextured()
}

// Binding describes one vertex attribute pointer.
type Binding struct {
	Name       string
	Components int32
	Offset     int
}

// Plan lists the attribute pointers to set up for a, in binding order.
func (l Layout) Plan(a Attribs) []Binding {
	plan := []Binding{
		{Name: a.Position, Components: 3, Offset: l.PositionOffset},
		{Name: a.Normal, Components: 3, Offset: l.NormalOffset},
	}
	if a.TexCoord != "" {
		plan = append(plan, Binding{Name: a.TexCoord, Components: 2, Offset: l.TexCoordOffset})
	}
	return plan
}
