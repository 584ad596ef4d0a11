// Command sphere-view draws one particle sphere as a spinning wireframe,
// for checking the triangle strip the particle pool renders with.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"planet-system/internal/graphics"
	"planet-system/internal/particles"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
uniform mat4 mvp;
void main() {
	gl_Position = mvp * vec4(aPos, 1.0);
}`

const fragmentSrc = `#version 410 core
uniform vec4 color;
out vec4 fragColor;
void main() {
	fragColor = color;
}`

func init() {
	runtime.LockOSThread()
}

func main() {
	segX := flag.Int("x", particles.SphereSegmentsX, "longitude segments")
	segY := flag.Int("y", particles.SphereSegmentsY, "latitude segments")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(*segX, *segY, log); err != nil {
		log.Fatal("sphere-view", zap.Error(err))
	}
}

func run(segX, segY int, log *zap.Logger) error {
	vertices, indices, err := buildMesh(segX, segY)
	if err != nil {
		return err
	}
	log.Info("sphere built",
		zap.Int("vertices", len(vertices)/3),
		zap.Int("indices", len(indices)),
	)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "sphere-view", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	shader, err := graphics.NewShaderFromSource(vertexSrc, fragmentSrc)
	if err != nil {
		return fmt.Errorf("sphere shader: %w", err)
	}
	defer shader.Delete()

	surface := graphics.NewGLSurface()
	mesh, err := surface.UploadMesh(vertices, indices)
	if err != nil {
		return fmt.Errorf("upload sphere mesh: %w", err)
	}
	defer surface.DeleteMesh(mesh)

	fbw, fbh := window.GetFramebufferSize()
	camera := graphics.NewCamera(fbw, fbh)
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)

	frames := 0
	last := time.Now()
	start := last

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		angle := float32(time.Since(start).Seconds()) * 0.5
		model := mgl32.HomogRotate3DY(angle).Mul4(mgl32.HomogRotate3DX(0.4))
		mvp := camera.GetProjectionMatrix().Mul4(camera.GetViewMatrix()).Mul4(model)

		shader.Use()
		shader.SetMatrix4("mvp", mvp)
		shader.SetVector4f("color", mgl32.Vec4{0.0, 1.0, 0.0, 1.0})
		surface.DrawStrip(mesh)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if elapsed := time.Since(last); elapsed >= time.Second {
			log.Info("fps", zap.Int("fps", int(float64(frames)/elapsed.Seconds()+0.5)))
			frames = 0
			last = time.Now()
		}
	}
	return nil
}

// buildMesh tessellates the preview sphere, rejecting empty tessellations.
func buildMesh(segX, segY int) ([]float32, []uint32, error) {
	vertices, indices := particles.BuildSphere(segX, segY)
	if vertices == nil {
		return nil, nil, fmt.Errorf("segment counts must be positive, got %dx%d", segX, segY)
	}
	return vertices, indices, nil
}
