package graphics

import (
	"errors"

	"planet-system/internal/particles"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLSurface issues particle mesh and blend operations on the current OpenGL context.
type GLSurface struct{}

// NewGLSurface returns a surface bound to whatever context is current on the calling thread.
func NewGLSurface() *GLSurface {
	return &GLSurface{}
}

// UploadMesh creates a VAO with a position-only VBO and an element buffer.
func (s *GLSurface) UploadMesh(vertices []float32, indices []uint32) (particles.Mesh, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return particles.Mesh{}, errors.New("empty mesh")
	}

	var m particles.Mesh
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.GenBuffers(1, &m.EBO)

	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)

	m.IndexCount = int32(len(indices))
	return m, nil
}

// DeleteMesh frees the buffers behind m.
func (s *GLSurface) DeleteMesh(m particles.Mesh) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
}

// SetBlend switches the blend function; blending itself is enabled by the renderer.
func (s *GLSurface) SetBlend(mode particles.BlendMode) {
	switch mode {
	case particles.BlendAdditive:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

// DrawStrip draws m as one indexed triangle strip.
func (s *GLSurface) DrawStrip(m particles.Mesh) {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLE_STRIP, m.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
