package tilescroll

import "time"

// Clock converts wall clock time into a count of whole ticks. Each tick is
// reported by Due exactly once no matter how irregularly it is polled.
type Clock struct {
	tick    time.Duration
	start   time.Time
	applied int
}

// NewClock returns a clock of tick sized ticks starting at start. A
// non-positive tick never reports any ticks due.
func NewClock(tick time.Duration, start time.Time) *Clock {
	return &Clock{
		tick:  tick,
		start: start,
	}
}

// Due returns the number of ticks elapsed by now that have not been
// returned before.
func (c *Clock) Due(now time.Time) int {
	if c.tick <= 0 {
		return 0
	}
	elapsed := now.Sub(c.start)
	if elapsed < 0 {
		return 0
	}
	total := int(elapsed / c.tick)
	if total <= c.applied {
		return 0
	}
	n := total - c.applied
	c.applied = total
	return n
}

// Applied returns the number of ticks reported so far.
func (c *Clock) Applied() int {
	return c.applied
}

// Elapsed returns the time since the clock started.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.start)
}

// Restart resets the clock to start at now.
func (c *Clock) Restart(now time.Time) {
	c.start = now
	c.applied = 0
}
