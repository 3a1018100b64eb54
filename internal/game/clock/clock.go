// Package clock turns variable frame times into fixed simulation ticks.
package clock

import "time"

// Clock converts variable frame times into whole fixed ticks.
type Clock struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
}

// New creates a clock for the given tick length. At most maxTicks are
// released per frame; time beyond that is dropped so a long stall does not
// snowball into ever longer catch-up frames.
func New(step time.Duration, maxTicks int) *Clock {
	return &Clock{step: step, maxTicks: maxTicks}
}

// Advance adds elapsed frame time and returns how many ticks to run.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += elapsed

	ticks := int(c.acc / c.step)
	if ticks > c.maxTicks {
		ticks = c.maxTicks
		c.acc = 0
		return ticks
	}
	c.acc -= time.Duration(ticks) * c.step
	return ticks
}

// Reset discards accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
