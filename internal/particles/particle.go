package particles

import "github.com/go-gl/mathgl/mgl32"

// Particle represents a single particle and its state.
// The zero value is an expired particle.
type Particle struct {
	Position     mgl32.Vec3
	Velocity     mgl32.Vec3 // units per second, fixed at spawn
	Acceleration mgl32.Vec3 // always zero; no forces are integrated
	Color        mgl32.Vec4
	Life         float32 // seconds remaining, <= 0 means the slot is free
	Visible      bool
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Drawable reports whether the particle passes the render filter.
func (p *Particle) Drawable() bool {
	return p.Life > 0 && p.Visible
}

// Settings holds the spawn and aging constants of a pool.
type Settings struct {
	SpawnLife           float32    // life assigned on respawn
	SpawnColor          mgl32.Vec4 // color assigned on respawn
	AlphaDecay          float32    // alpha lost per second while alive
	VisibilityThreshold float32    // distance from the focal point that reveals a particle
	Scale               float32    // uniform model scale applied when drawing
	SpeedRange          float32    // velocity components are uniform in [-SpeedRange/2, SpeedRange/2)
}

// DefaultSettings returns the stock spark look: yellow, 10s life, fast fade.
func DefaultSettings() Settings {
	return Settings{
		SpawnLife:           10.0,
		SpawnColor:          mgl32.Vec4{1.0, 1.0, 0.0, 1.0},
		AlphaDecay:          2.5,
		VisibilityThreshold: 2.0,
		Scale:               0.001,
		SpeedRange:          1.0,
	}
}
