package marker

import (
	"fmt"
	"path/filepath"

	"planet-system/internal/graphics"
	renderer "planet-system/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// The marker shares the particle program: same uniforms, flat colour.
const (
	VertShaderName = "particle/particle.vert"
	FragShaderName = "particle/particle.frag"
)

// cubeEdges is a unit cube centred on the origin as 12 line segments.
var cubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Marker outlines the emitter position with a small wireframe cube.
type Marker struct {
	shadersDir string
	size       float32
	color      mgl32.Vec4
	visible    bool

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewMarker creates a marker of the given edge length.
func NewMarker(shadersDir string, size float32, color mgl32.Vec4, visible bool) *Marker {
	return &Marker{shadersDir: shadersDir, size: size, color: color, visible: visible}
}

// Init compiles the shader and uploads the cube outline.
func (m *Marker) Init() error {
	var err error
	m.shader, err = graphics.NewShader(
		filepath.Join(m.shadersDir, VertShaderName),
		filepath.Join(m.shadersDir, FragShaderName),
	)
	if err != nil {
		return fmt.Errorf("marker shader: %w", err)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the outline at the current focal point.
func (m *Marker) Render(ctx renderer.RenderContext) {
	if !m.visible {
		return
	}
	if ctx.Profiler != nil {
		defer ctx.Profiler.Track("renderer.marker")()
	}

	model := mgl32.Translate3D(ctx.Focal.X(), ctx.Focal.Y(), ctx.Focal.Z()).
		Mul4(mgl32.Scale3D(m.size, m.size, m.size))

	m.shader.Use()
	m.shader.SetMatrix4("projection", ctx.Proj)
	m.shader.SetMatrix4("view", ctx.View)
	m.shader.SetMatrix4("model", model)
	m.shader.SetVector4f("color", m.color)

	gl.BindVertexArray(m.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
	gl.BindVertexArray(0)
}

// Toggle shows or hides the marker.
func (m *Marker) Toggle() {
	m.visible = !m.visible
}

// Visible reports whether the marker is drawn.
func (m *Marker) Visible() bool {
	return m.visible
}

// Dispose cleans up OpenGL resources
func (m *Marker) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.shader != nil {
		m.shader.Delete()
		m.shader = nil
	}
}

// SetViewport is a no-op; the marker lives in world space.
func (m *Marker) SetViewport(width, height int) {}
