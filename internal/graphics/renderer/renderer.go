package renderer

import (
	"fmt"

	"planet-system/internal/graphics"
	"planet-system/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	profiler    *profiling.Profiler
	log         *zap.Logger

	ClearColor [4]float32
}

// NewRenderer configures global GL state and initializes every renderable in order.
// Renderables that were already initialized are disposed if a later one fails.
func NewRenderer(camera *graphics.Camera, prof *profiling.Profiler, log *zap.Logger, rs ...Renderable) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
		profiler:    prof,
		log:         log,
		ClearColor:  [4]float32{0.3, 0.5, 0.5, 1.0},
	}

	for i, rend := range rs {
		if err := rend.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rend, err)
		}
		log.Debug("renderable initialized", zap.String("type", fmt.Sprintf("%T", rend)))
	}

	return r, nil
}

// Render clears the framebuffer and draws every feature for the given frame.
func (r *Renderer) Render(f Frame) {
	gl.ClearColor(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], r.ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:   r.camera,
		Profiler: r.profiler,
		DT:       f.DT,
		Focal:    f.Focal,
		View:     r.camera.GetViewMatrix(),
		Proj:     r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and tells the camera and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
