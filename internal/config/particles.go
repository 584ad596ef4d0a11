package config

import (
	"planet-system/internal/particles"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings converts the particle section into pool settings. Call after Validate.
func (p ParticlesConfig) Settings() particles.Settings {
	s := particles.DefaultSettings()
	s.SpawnLife = p.Life
	s.AlphaDecay = p.AlphaDecay
	s.VisibilityThreshold = p.VisibilityThreshold
	s.Scale = p.Scale
	s.SpeedRange = p.SpeedRange
	if len(p.Color) == 4 {
		s.SpawnColor = mgl32.Vec4{p.Color[0], p.Color[1], p.Color[2], p.Color[3]}
	}
	return s
}

// EyeVec returns the camera position as a vector.
func (c CameraConfig) EyeVec() mgl32.Vec3 {
	if len(c.Eye) != 3 {
		return mgl32.Vec3{0, 0, 3}
	}
	return mgl32.Vec3{c.Eye[0], c.Eye[1], c.Eye[2]}
}
