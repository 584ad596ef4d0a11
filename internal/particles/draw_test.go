package particles

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDrawFiltersAndRestoresBlend(t *testing.T) {
	p, sh, sf := newTestPool(5)
	ps := p.Particles()
	ps[0] = Particle{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec4{1, 0, 0, 0.5}, Life: 1, Visible: true}
	ps[1] = Particle{Position: mgl32.Vec3{9, 9, 9}, Life: 1, Visible: false}
	ps[2] = Particle{Position: mgl32.Vec3{8, 8, 8}, Life: 0, Visible: true}
	ps[3] = Particle{Position: mgl32.Vec3{7, 7, 7}, Life: -2, Visible: true}
	ps[4] = Particle{Position: mgl32.Vec3{-1, 0, 0}, Color: mgl32.Vec4{0, 1, 0, 1}, Life: 0.01, Visible: true}

	drawn := p.Draw()
	if drawn != 2 {
		t.Fatalf("drawn = %d, want 2", drawn)
	}
	if len(sf.draws) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(sf.draws))
	}
	for _, m := range sf.draws {
		if m != p.Mesh() {
			t.Errorf("drew mesh %+v, want %+v", m, p.Mesh())
		}
	}
	if len(sf.blends) != 2 || sf.blends[0] != BlendAdditive || sf.blends[1] != BlendAlpha {
		t.Errorf("blend sequence = %v, want [additive alpha]", sf.blends)
	}
	if sh.uses != 1 {
		t.Errorf("shader bound %d times, want 1", sh.uses)
	}

	models := sh.named("model")
	colors := sh.named("color")
	if len(models) != 2 || len(colors) != 2 {
		t.Fatalf("uniform calls: %d model, %d color", len(models), len(colors))
	}
	s := p.Settings().Scale
	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(s, s, s))
	if !models[0].mat.ApproxEqual(want) {
		t.Errorf("model = %v, want %v", models[0].mat, want)
	}
	if got := models[1].mat.Col(3).Vec3(); got != (mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("second translation = %v", got)
	}
	if colors[0].vec != ps[0].Color || colors[1].vec != ps[4].Color {
		t.Errorf("colors = %v, %v", colors[0].vec, colors[1].vec)
	}
}

func TestDrawEmptyPoolStillRestoresBlend(t *testing.T) {
	p, _, sf := newTestPool(3)
	if n := p.Draw(); n != 0 {
		t.Fatalf("drawn = %d, want 0", n)
	}
	if len(sf.blends) != 2 || sf.blends[1] != BlendAlpha {
		t.Errorf("blend sequence = %v", sf.blends)
	}
}

func TestDrawMatchesFilterOverHistory(t *testing.T) {
	p, _, sf := newTestPool(40)
	rng := rand.New(rand.NewSource(5))
	for frame := 0; frame < 400; frame++ {
		p.Update(rng.Float32()*0.2, rng.Intn(5), mgl32.Vec3{float32(frame) * 0.01, 0, 0})
		want := 0
		for i := range p.Particles() {
			pt := &p.Particles()[i]
			if pt.Life > 0 && pt.Visible {
				want++
			}
		}
		sf.draws = sf.draws[:0]
		if got := p.Draw(); got != want || len(sf.draws) != want {
			t.Fatalf("frame %d: drawn %d (%d calls), want %d", frame, got, len(sf.draws), want)
		}
		if s := p.Stats(); s.Visible != want {
			t.Fatalf("frame %d: stats visible %d, want %d", frame, s.Visible, want)
		}
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendAdditive.String() != "additive" || BlendAlpha.String() != "alpha" || BlendMode(9).String() != "unknown" {
		t.Errorf("unexpected blend names")
	}
}
