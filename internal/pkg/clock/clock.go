package clock

import "time"

// Clock abstracts the wall clock so "today" in the club time zone can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type FixedClock struct {
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.current
}

func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// AdvanceDays moves the clock by whole calendar days.
func (c *FixedClock) AdvanceDays(n int) {
	c.current = c.current.AddDate(0, 0, n)
}
