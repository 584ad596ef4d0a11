package particles

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformCall struct {
	name string
	mat  mgl32.Mat4
	vec  mgl32.Vec4
}

type fakeShader struct {
	uses  int
	calls []uniformCall
}

func (s *fakeShader) Use() { s.uses++ }

func (s *fakeShader) SetMatrix4(name string, value mgl32.Mat4) {
	s.calls = append(s.calls, uniformCall{name: name, mat: value})
}

func (s *fakeShader) SetVector4f(name string, value mgl32.Vec4) {
	s.calls = append(s.calls, uniformCall{name: name, vec: value})
}

func (s *fakeShader) named(name string) []uniformCall {
	var out []uniformCall
	for _, c := range s.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

type fakeSurface struct {
	uploadErr error

	vertices []float32
	indices  []uint32
	deleted  []Mesh
	blends   []BlendMode
	draws    []Mesh
}

func (f *fakeSurface) UploadMesh(vertices []float32, indices []uint32) (Mesh, error) {
	if f.uploadErr != nil {
		return Mesh{}, f.uploadErr
	}
	f.vertices = vertices
	f.indices = indices
	return Mesh{VAO: 7, VBO: 8, EBO: 9}, nil
}

func (f *fakeSurface) DeleteMesh(m Mesh) { f.deleted = append(f.deleted, m) }

func (f *fakeSurface) SetBlend(mode BlendMode) { f.blends = append(f.blends, mode) }

func (f *fakeSurface) DrawStrip(m Mesh) { f.draws = append(f.draws, m) }

var errUpload = errors.New("no context")

func newTestPool(capacity int, opts ...Option) (*Pool, *fakeShader, *fakeSurface) {
	sh := &fakeShader{}
	sf := &fakeSurface{}
	p, err := NewPool(sh, 0, capacity, sf, append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		panic(err)
	}
	return p, sh, sf
}
