package sparks

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"planet-system/internal/graphics"
	renderer "planet-system/internal/graphics/renderer"
	"planet-system/internal/particles"

	"go.uber.org/zap"
)

const (
	VertShaderName = "particle/particle.vert"
	FragShaderName = "particle/particle.frag"
)

// Options configures the sparks feature.
type Options struct {
	ShadersDir    string
	Capacity      int
	SpawnPerFrame int
	Seed          int64
	Settings      particles.Settings
}

// Sparks draws the particle swarm around the moving focal point.
type Sparks struct {
	opts   Options
	log    *zap.Logger
	shader *graphics.Shader
	pool   *particles.Pool

	lastDrawn int
}

// NewSparks creates a new sparks renderable. GL resources are created in Init.
func NewSparks(opts Options, log *zap.Logger) *Sparks {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sparks{opts: opts, log: log}
}

// Init compiles the particle shader and builds the pool with its sphere mesh.
func (s *Sparks) Init() error {
	var err error
	s.shader, err = graphics.NewShader(
		filepath.Join(s.opts.ShadersDir, VertShaderName),
		filepath.Join(s.opts.ShadersDir, FragShaderName),
	)
	if err != nil {
		return fmt.Errorf("particle shader: %w", err)
	}

	s.pool, err = particles.NewPool(s.shader, 0, s.opts.Capacity, graphics.NewGLSurface(),
		particles.WithSettings(s.opts.Settings),
		particles.WithRand(rand.New(rand.NewSource(s.opts.Seed))),
	)
	if err != nil {
		s.shader.Delete()
		s.shader = nil
		return err
	}

	s.log.Info("particle pool ready",
		zap.Int("capacity", s.pool.Capacity()),
		zap.Int32("sphere_indices", s.pool.Mesh().IndexCount),
		zap.Int64("seed", s.opts.Seed),
	)
	return nil
}

// Render binds the camera matrices, advances the swarm and draws it.
func (s *Sparks) Render(ctx renderer.RenderContext) {
	s.shader.Use()
	s.shader.SetMatrix4("projection", ctx.Proj)
	s.shader.SetMatrix4("view", ctx.View)

	func() {
		if ctx.Profiler != nil {
			defer ctx.Profiler.Track("particles.Update")()
		}
		s.pool.Update(ctx.DT, s.opts.SpawnPerFrame, ctx.Focal)
	}()
	func() {
		if ctx.Profiler != nil {
			defer ctx.Profiler.Track("particles.Draw")()
		}
		s.lastDrawn = s.pool.Draw()
	}()
}

// Dispose releases the mesh and the shader program.
func (s *Sparks) Dispose() {
	if s.pool != nil {
		s.pool.Release()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op; the particles only depend on the camera matrices.
func (s *Sparks) SetViewport(width, height int) {}

// Stats reports the pool state after the last frame.
func (s *Sparks) Stats() particles.Stats {
	if s.pool == nil {
		return particles.Stats{}
	}
	return s.pool.Stats()
}

// LastDrawn returns how many particles the previous Render drew.
func (s *Sparks) LastDrawn() int {
	return s.lastDrawn
}
