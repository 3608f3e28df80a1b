// Package clock supplies the time used to stamp manifests and measure runs,
// so both can be made deterministic in tests.
package clock

import "time"

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on clk since start.
func Since(clk Clock, start time.Time) time.Duration {
	return clk.Now().Sub(start)
}

// FakeClock implements Clock for tests. Each call to Now advances the time
// by Step, which lets a run measure a non-zero duration.
type FakeClock struct {
	current time.Time
	Step    time.Duration
}

// NewFakeClock creates a new FakeClock fixed at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the current fake time, then advances it by Step.
func (c *FakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.Step)
	return now
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
