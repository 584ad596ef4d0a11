package particles

import (
	"errors"
	"fmt"
	"math/rand"
)

// Pool owns a fixed number of particles and the sphere mesh every one of them is drawn with.
//
// A pool is not safe for concurrent use. One goroutine calls Update and Draw
// each frame; other readers go through Snapshot.
type Pool struct {
	particles []Particle
	alloc     Allocator
	settings  Settings
	rng       *rand.Rand

	shader  Shader
	texture uint32 // kept for callers that bind it; the sphere is untextured
	surface Surface
	mesh    Mesh

	released bool
}

// Option customizes a Pool at construction.
type Option func(*Pool)

// WithSettings replaces the default spawn and aging constants.
func WithSettings(s Settings) Option {
	return func(p *Pool) { p.settings = s }
}

// WithRand injects the generator used for spawn velocities.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) {
		if r != nil {
			p.rng = r
		}
	}
}

// WithSeed seeds a private generator for spawn velocities.
func WithSeed(seed int64) Option {
	return func(p *Pool) { p.rng = rand.New(rand.NewSource(seed)) }
}

// NewPool creates capacity expired particles and uploads the shared sphere mesh.
func NewPool(shader Shader, texture uint32, capacity int, surface Surface, opts ...Option) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("particle pool capacity must be positive, got %d", capacity)
	}
	if shader == nil {
		return nil, errors.New("particle pool needs a shader")
	}
	if surface == nil {
		return nil, errors.New("particle pool needs a surface")
	}

	p := &Pool{
		particles: make([]Particle, capacity),
		settings:  DefaultSettings(),
		rng:       rand.New(rand.NewSource(1)),
		shader:    shader,
		texture:   texture,
		surface:   surface,
	}
	for _, opt := range opts {
		opt(p)
	}

	vertices, indices := BuildSphere(SphereSegmentsX, SphereSegmentsY)
	mesh, err := surface.UploadMesh(vertices, indices)
	if err != nil {
		return nil, fmt.Errorf("upload sphere mesh: %w", err)
	}
	mesh.IndexCount = int32(len(indices))
	p.mesh = mesh

	return p, nil
}

// Particles exposes the backing slice. Its length never changes.
func (p *Pool) Particles() []Particle {
	return p.particles
}

// Capacity returns the fixed number of slots.
func (p *Pool) Capacity() int {
	return len(p.particles)
}

// Mesh returns the shared sphere mesh.
func (p *Pool) Mesh() Mesh {
	return p.mesh
}

// Texture returns the texture handle the pool was built with.
func (p *Pool) Texture() uint32 {
	return p.texture
}

// Settings returns the pool's spawn and aging constants.
func (p *Pool) Settings() Settings {
	return p.settings
}

// Allocator exposes the recycling cursor, mainly for inspection.
func (p *Pool) Allocator() *Allocator {
	return &p.alloc
}

// Snapshot copies the particles into dst, growing it when needed, and returns it.
func (p *Pool) Snapshot(dst []Particle) []Particle {
	if cap(dst) < len(p.particles) {
		dst = make([]Particle, len(p.particles))
	}
	dst = dst[:len(p.particles)]
	copy(dst, p.particles)
	return dst
}

// Stats summarizes the pool for telemetry.
type Stats struct {
	Capacity  int
	Live      int
	Visible   int
	Evictions uint64
}

// Stats counts live and drawable particles.
func (p *Pool) Stats() Stats {
	s := Stats{Capacity: len(p.particles), Evictions: p.alloc.Evictions()}
	for i := range p.particles {
		if p.particles[i].Alive() {
			s.Live++
			if p.particles[i].Visible {
				s.Visible++
			}
		}
	}
	return s
}

// Release deletes the GPU mesh. Calling it more than once is a no-op.
// Draw does nothing after Release.
func (p *Pool) Release() {
	if p.released {
		return
	}
	p.released = true
	p.surface.DeleteMesh(p.mesh)
	p.mesh = Mesh{}
}
