package renderer

import (
	"planet-system/internal/graphics"
	"planet-system/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is what the application loop knows about the frame being drawn.
type Frame struct {
	DT    float32    // seconds since the previous frame
	Focal mgl32.Vec3 // where the emitter is this frame
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera   *graphics.Camera
	Profiler *profiling.Profiler
	DT       float32
	Focal    mgl32.Vec3
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
