package particles

// Allocator finds reusable slots in a particle slice.
// It remembers the last slot handed out so the next search usually ends immediately.
type Allocator struct {
	last      int
	evictions uint64
}

// Next returns the index of a slot that may be respawned.
//
// The search runs from the last used index to the end, then wraps to the
// start. When every slot is alive, slot 0 is overwritten and the cursor
// resets; the eviction counter records each such overwrite.
func (a *Allocator) Next(ps []Particle) int {
	if a.last >= len(ps) || a.last < 0 {
		a.last = 0
	}
	for i := a.last; i < len(ps); i++ {
		if ps[i].Life <= 0 {
			a.last = i
			return i
		}
	}
	for i := 0; i < a.last; i++ {
		if ps[i].Life <= 0 {
			a.last = i
			return i
		}
	}
	a.last = 0
	a.evictions++
	return 0
}

// Cursor returns the index the next search starts from.
func (a *Allocator) Cursor() int {
	return a.last
}

// Evictions returns how many live particles were overwritten because the pool was saturated.
func (a *Allocator) Evictions() uint64 {
	return a.evictions
}
