package utils

import "time"

// Clock abstracts wall time so services and the closer can be tested
// against a fixed instant instead of time.Now.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a Clock pinned to a settable instant, for tests.
type FixedClock struct {
	Time time.Time
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	return c.Time
}

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
