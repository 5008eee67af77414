package game

import "time"

// Clock reports elapsed seconds since its first sample.
// Readings come from the monotonic clock and never decrease.
type Clock struct {
	now     func() time.Time
	start   time.Time
	started bool
	last    float64
}

// NewClock creates a clock backed by time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Elapsed returns seconds since the first call.
func (c *Clock) Elapsed() float64 {
	t := c.now()
	if !c.started {
		c.start = t
		c.started = true
		return 0
	}
	e := t.Sub(c.start).Seconds()
	if e < c.last {
		return c.last
	}
	c.last = e
	return e
}
