package particles

import (
	"errors"
	"testing"
)

func TestNewPoolRejectsBadInput(t *testing.T) {
	sh := &fakeShader{}
	sf := &fakeSurface{}
	if _, err := NewPool(sh, 0, 0, sf); err == nil {
		t.Errorf("capacity 0: expected error")
	}
	if _, err := NewPool(sh, 0, -3, sf); err == nil {
		t.Errorf("negative capacity: expected error")
	}
	if _, err := NewPool(nil, 0, 4, sf); err == nil {
		t.Errorf("nil shader: expected error")
	}
	if _, err := NewPool(sh, 0, 4, nil); err == nil {
		t.Errorf("nil surface: expected error")
	}
	_, err := NewPool(sh, 0, 4, &fakeSurface{uploadErr: errUpload})
	if !errors.Is(err, errUpload) {
		t.Errorf("upload failure: got %v, want wrapped %v", err, errUpload)
	}
}

func TestNewPoolStartsExpired(t *testing.T) {
	p, _, sf := newTestPool(16)
	if p.Capacity() != 16 || len(p.Particles()) != 16 {
		t.Fatalf("capacity = %d, len = %d, want 16", p.Capacity(), len(p.Particles()))
	}
	for i, pt := range p.Particles() {
		if pt.Alive() || pt.Visible {
			t.Fatalf("particle %d not expired: %+v", i, pt)
		}
	}
	if p.Mesh().IndexCount != int32(len(sf.indices)) {
		t.Errorf("index count = %d, want %d", p.Mesh().IndexCount, len(sf.indices))
	}
	if p.Mesh().VAO != 7 {
		t.Errorf("mesh handle not kept: %+v", p.Mesh())
	}
}

func TestPoolTextureIsKept(t *testing.T) {
	p, err := NewPool(&fakeShader{}, 42, 1, &fakeSurface{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Texture() != 42 {
		t.Errorf("texture = %d, want 42", p.Texture())
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	p, sh, sf := newTestPool(4)
	p.Update(0, 4, [3]float32{})
	p.Release()
	p.Release()
	if len(sf.deleted) != 1 {
		t.Fatalf("DeleteMesh called %d times, want 1", len(sf.deleted))
	}
	if sf.deleted[0].VAO != 7 {
		t.Errorf("deleted wrong mesh: %+v", sf.deleted[0])
	}
	if n := p.Draw(); n != 0 || len(sf.draws) != 0 || sh.uses != 0 {
		t.Errorf("Draw after Release issued work: drawn=%d draws=%d uses=%d", n, len(sf.draws), sh.uses)
	}
}

func TestSnapshotCopies(t *testing.T) {
	p, _, _ := newTestPool(3)
	p.Update(0, 2, [3]float32{1, 2, 3})
	snap := p.Snapshot(nil)
	if len(snap) != 3 {
		t.Fatalf("snapshot len = %d, want 3", len(snap))
	}
	snap[0].Life = -100
	if p.Particles()[0].Life == -100 {
		t.Errorf("snapshot aliases the pool")
	}
	reuse := make([]Particle, 0, 8)
	if got := p.Snapshot(reuse); &got[0] != &reuse[:1][0] {
		t.Errorf("snapshot did not reuse a large enough buffer")
	}
}

func TestStatsCounts(t *testing.T) {
	p, _, _ := newTestPool(5)
	ps := p.Particles()
	ps[0] = Particle{Life: 1, Visible: true}
	ps[1] = Particle{Life: 1}
	ps[2] = Particle{Life: -1, Visible: true}
	got := p.Stats()
	want := Stats{Capacity: 5, Live: 2, Visible: 1}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}
