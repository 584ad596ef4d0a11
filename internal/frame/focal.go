package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FocalPath moves the emitter around a horizontal circle centred on the origin.
type FocalPath struct {
	Radius       float32
	AngularSpeed float32 // radians per second
	Height       float32

	elapsed float64
}

// Advance moves time forward by dt seconds and returns the new focal point.
func (f *FocalPath) Advance(dt float32) mgl32.Vec3 {
	f.elapsed += float64(dt)
	return f.At(f.elapsed)
}

// At returns the focal point t seconds after the start.
func (f *FocalPath) At(t float64) mgl32.Vec3 {
	if f.Radius == 0 {
		return mgl32.Vec3{0, f.Height, 0}
	}
	angle := t * float64(f.AngularSpeed)
	return mgl32.Vec3{
		f.Radius * float32(math.Cos(angle)),
		f.Height,
		f.Radius * float32(math.Sin(angle)),
	}
}
