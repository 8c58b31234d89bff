package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The assistant reads "today" from it when computing upcoming birthdays and
// stamping exported calendars.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
