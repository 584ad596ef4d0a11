package particles

import "github.com/go-gl/mathgl/mgl32"

// Draw renders every live, visible particle as a small sphere with additive
// blending and restores alpha blending afterwards. It returns the number of
// particles drawn.
//
// The shader must already carry the view and projection uniforms.
func (p *Pool) Draw() int {
	if p.released {
		return 0
	}

	p.surface.SetBlend(BlendAdditive)
	p.shader.Use()

	s := p.settings.Scale
	scale := mgl32.Scale3D(s, s, s)
	drawn := 0
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Drawable() {
			continue
		}
		model := mgl32.Translate3D(pt.Position[0], pt.Position[1], pt.Position[2]).Mul4(scale)
		p.shader.SetMatrix4("model", model)
		p.shader.SetVector4f("color", pt.Color)
		p.surface.DrawStrip(p.mesh)
		drawn++
	}

	p.surface.SetBlend(BlendAlpha)
	return drawn
}
