package geometry

import "go.uber.org/zap"

// Library holds one immutable mesh per builder family. Every object of a
// family reads the same mesh.
type Library struct {
	meshes [NumFamilies]*Mesh
	canvas *Canvas
	log    *zap.Logger
}

// NewLibrary creates an empty library. A nil logger disables logging.
func NewLibrary(log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{canvas: NewCanvas(), log: log}
}

// Mesh returns the shared mesh for s, building its family on first use.
func (l *Library) Mesh(s Shape) (*Mesh, error) {
	f := s.Family()
	if m := l.meshes[f]; m != nil {
		return m, nil
	}

	Create(l.canvas, s)
	if err := l.canvas.Validate(); err != nil {
		return nil, err
	}

	m := l.canvas.Mesh()
	l.meshes[f] = m
	l.log.Debug("built mesh",
		zap.Stringer("family", f),
		zap.Int("triangles", m.NumTriangles()))
	return m, nil
}

// Built reports how many families have been built so far.
func (l *Library) Built() int {
	n := 0
	for _, m := range l.meshes {
		if m != nil {
			n++
		}
	}
	return n
}
