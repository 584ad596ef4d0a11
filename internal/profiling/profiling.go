package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Profiler accumulates named CPU durations for the current frame.
// The zero value is ready to use.
type Profiler struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

// New returns an empty profiler.
func New() *Profiler {
	return &Profiler{}
}

func (p *Profiler) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer prof.Track("particles.Update")()
func (p *Profiler) Track(name string) func() {
	start := p.clock()
	return func() {
		p.Add(name, p.clock().Sub(start))
	}
}

// Add records d under name directly.
func (p *Profiler) Add(name string, d time.Duration) {
	p.mu.Lock()
	if p.totals == nil {
		p.totals = make(map[string]time.Duration)
	}
	p.totals[name] += d
	p.mu.Unlock()
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func (p *Profiler) ResetFrame() {
	p.mu.Lock()
	clear(p.totals)
	p.mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func (p *Profiler) Snapshot() map[string]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]time.Duration, len(p.totals))
	for k, v := range p.totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every total whose name starts with prefix.
func (p *Profiler) SumWithPrefix(prefix string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var sum time.Duration
	for k, v := range p.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, longest first.
// Example: "particles.Draw:4.2ms, particles.Update:0.3ms"
func (p *Profiler) TopN(n int) string {
	ss := p.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
