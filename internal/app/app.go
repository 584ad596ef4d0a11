package app

import (
	"time"

	"planet-system/internal/config"
	"planet-system/internal/frame"
	"planet-system/internal/graphics"
	"planet-system/internal/graphics/renderables/marker"
	"planet-system/internal/graphics/renderables/sparks"
	renderer "planet-system/internal/graphics/renderer"
	"planet-system/internal/profiling"
	"planet-system/internal/telemetry"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var markerColor = mgl32.Vec4{1, 1, 1, 0.6}

// slowFrame is the processing time above which a frame is logged with its top costs.
const slowFrame = 16 * time.Millisecond

// App owns the window loop: timing, focal motion, rendering and telemetry.
type App struct {
	window   *glfw.Window
	cfg      *config.Config
	log      *zap.Logger
	renderer *renderer.Renderer
	sparks   *sparks.Sparks
	marker   *marker.Marker
	profiler *profiling.Profiler

	clock     *frame.Clock
	limiter   *frame.FPSLimiter
	focal     *frame.FocalPath
	collector *telemetry.Collector
	output    *telemetry.OutputManager
}

// New builds the renderer and its features on the window's current GL context.
func New(window *glfw.Window, cfg *config.Config, log *zap.Logger, out *telemetry.OutputManager) (*App, error) {
	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height)
	camera.FOV = cfg.Camera.FOV
	camera.NearPlane = cfg.Camera.Near
	camera.FarPlane = cfg.Camera.Far
	camera.Eye = cfg.Camera.EyeVec()

	prof := profiling.New()
	sp := sparks.NewSparks(sparks.Options{
		ShadersDir:    cfg.Shaders.Dir,
		Capacity:      cfg.Particles.Capacity,
		SpawnPerFrame: cfg.Particles.SpawnPerFrame,
		Seed:          cfg.Particles.Seed,
		Settings:      cfg.Particles.Settings(),
	}, log.Named("sparks"))

	mk := marker.NewMarker(cfg.Shaders.Dir, cfg.Focal.MarkerSize, markerColor, cfg.Focal.ShowMarker)

	r, err := renderer.NewRenderer(camera, prof, log.Named("renderer"), sp, mk)
	if err != nil {
		return nil, err
	}
	r.UpdateViewport(width, height)

	a := &App{
		window:   window,
		cfg:      cfg,
		log:      log,
		renderer: r,
		sparks:   sp,
		marker:   mk,
		profiler: prof,
		clock:    frame.NewClock(),
		limiter:  frame.NewFPSLimiter(cfg.Window.FPSLimit),
		focal: &frame.FocalPath{
			Radius:       cfg.Focal.Radius,
			AngularSpeed: cfg.Focal.AngularSpeed,
			Height:       cfg.Focal.Height,
		},
		collector: telemetry.NewCollector(time.Duration(cfg.Telemetry.WindowSeconds * float64(time.Second))),
		output:    out,
	}
	a.setupCallbacks()
	return a, nil
}

func (a *App) setupCallbacks() {
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			a.renderer.UpdateViewport(width, height)
		}
	})
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyM:
			a.marker.Toggle()
			a.log.Debug("marker toggled", zap.Bool("visible", a.marker.Visible()))
		}
	})
}

// Run drives frames until the window is closed.
func (a *App) Run() {
	frames := 0
	lastFPSCheck := time.Now()

	for !a.window.ShouldClose() {
		a.tick()
		frames++

		if time.Since(lastFPSCheck) >= time.Second {
			stats := a.sparks.Stats()
			a.log.Info("fps",
				zap.Int("fps", frames),
				zap.Int("live", stats.Live),
				zap.Int("visible", stats.Visible),
				zap.Uint64("evictions", stats.Evictions),
			)
			frames = 0
			lastFPSCheck = time.Now()
		}
	}

	if ws, ok := a.collector.Flush(); ok {
		a.writeWindow(ws)
	}
}

func (a *App) tick() {
	a.profiler.ResetFrame()
	dtDur := a.clock.Tick()
	dt := float32(dtDur.Seconds())
	start := time.Now()

	func() { defer a.profiler.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	focal := a.focal.Advance(dt)
	a.renderer.Render(renderer.Frame{DT: dt, Focal: focal})

	func() { defer a.profiler.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(start); d > slowFrame {
		a.log.Debug("slow frame",
			zap.Duration("took", d),
			zap.Duration("particles", a.profiler.SumWithPrefix("particles.")),
			zap.String("top", a.profiler.TopN(3)),
		)
	}

	if ws, ok := a.collector.Observe(telemetry.Sample{
		FrameTime: dtDur,
		Pool:      a.sparks.Stats(),
		Drawn:     a.sparks.LastDrawn(),
	}); ok {
		a.writeWindow(ws)
	}

	a.limiter.Wait()
}

func (a *App) writeWindow(ws telemetry.WindowStats) {
	if err := a.output.WriteWindow(ws); err != nil {
		a.log.Warn("telemetry write failed", zap.Error(err))
	}
}

// Dispose releases GPU resources. Call on the GL thread before the window is destroyed.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
