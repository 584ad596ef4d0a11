package frame

import "time"

// Clock measures wall-clock deltas between frames.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.last = c.now()
	return c
}

// Tick returns the time since the previous Tick (or since NewClock).
func (c *Clock) Tick() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}
