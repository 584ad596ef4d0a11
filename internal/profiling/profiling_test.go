package profiling

import (
	"testing"
	"time"
)

func TestTrackUsesClock(t *testing.T) {
	var p Profiler
	base := time.Unix(0, 0)
	ticks := []time.Time{base, base.Add(3 * time.Millisecond)}
	p.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}
	p.Track("particles.Update")()
	if got := p.Snapshot()["particles.Update"]; got != 3*time.Millisecond {
		t.Fatalf("got %v, want 3ms", got)
	}
}

func TestSumWithPrefixAndReset(t *testing.T) {
	p := New()
	p.Add("particles.Update", time.Millisecond)
	p.Add("particles.Draw", 2*time.Millisecond)
	p.Add("glfw.SwapBuffers", 5*time.Millisecond)
	if got := p.SumWithPrefix("particles."); got != 3*time.Millisecond {
		t.Errorf("particles sum = %v, want 3ms", got)
	}
	p.ResetFrame()
	if len(p.Snapshot()) != 0 {
		t.Errorf("snapshot not empty after reset")
	}
}

func TestTopN(t *testing.T) {
	p := New()
	p.Add("a", 1500*time.Microsecond)
	p.Add("b", 4200*time.Microsecond)
	p.Add("c", 100*time.Microsecond)
	if got, want := p.TopN(2), "b:4.2ms, a:1.5ms"; got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if got := p.TopN(10); got != "b:4.2ms, a:1.5ms, c:0.1ms" {
		t.Errorf("TopN(10) = %q", got)
	}
}
