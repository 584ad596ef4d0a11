package particles

import "github.com/go-gl/mathgl/mgl32"

// Shader is the uniform-setting side of a compiled program.
// The caller binds view and projection on the same program before Draw.
type Shader interface {
	Use()
	SetMatrix4(name string, value mgl32.Mat4)
	SetVector4f(name string, value mgl32.Vec4)
}

// BlendMode selects how particle fragments combine with the framebuffer.
type BlendMode int

const (
	BlendAlpha    BlendMode = iota // srcAlpha, 1-srcAlpha
	BlendAdditive                  // srcAlpha, one
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// Mesh identifies GPU buffers holding an indexed triangle strip.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Surface is the part of the graphics context the pool needs.
type Surface interface {
	UploadMesh(vertices []float32, indices []uint32) (Mesh, error)
	DeleteMesh(m Mesh)
	SetBlend(mode BlendMode)
	DrawStrip(m Mesh)
}
