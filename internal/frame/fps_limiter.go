package frame

import (
	"time"
)

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	Limit int // frames per second, <= 0 disables limiting

	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{Limit: limit, now: time.Now, sleep: time.Sleep}
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f.Limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.Limit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			f.sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if f.next.Sub(f.now()) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
