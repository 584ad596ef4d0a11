package particles

import "github.com/go-gl/mathgl/mgl32"

// Update spawns spawnCount particles at focal and ages every particle by dt seconds.
//
// Spawn requests beyond free capacity overwrite live particles (see Allocator.Next).
// Particles spawned in this call are aged in the same call.
func (p *Pool) Update(dt float32, spawnCount int, focal mgl32.Vec3) {
	for i := 0; i < spawnCount; i++ {
		idx := p.alloc.Next(p.particles)
		p.respawn(&p.particles[idx], focal)
	}

	threshold := p.settings.VisibilityThreshold
	for i := range p.particles {
		pt := &p.particles[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}
		pt.Position = pt.Position.Add(pt.Velocity.Mul(dt))
		pt.Color[3] -= dt * p.settings.AlphaDecay
		if pt.Color[3] < 0 {
			pt.Color[3] = 0
		}
		// Measured against this frame's focal point, not the spawn point.
		if pt.Position.Sub(focal).Len() > threshold {
			pt.Visible = true
		}
	}
}

func (p *Pool) respawn(pt *Particle, focal mgl32.Vec3) {
	r := p.settings.SpeedRange
	pt.Position = focal
	pt.Velocity = mgl32.Vec3{
		(p.rng.Float32() - 0.5) * r,
		(p.rng.Float32() - 0.5) * r,
		(p.rng.Float32() - 0.5) * r,
	}
	pt.Acceleration = mgl32.Vec3{}
	pt.Color = p.settings.SpawnColor
	pt.Life = p.settings.SpawnLife
	pt.Visible = false
}
