// Package clock abstracts the time source so that command handlers can be
// tested with deterministic timestamps instead of wall-clock reads.
package clock

import "time"

// Clock supplies the current time to components that stamp domain events.
type Clock interface {
	Now() time.Time
}

// System is the production Clock backed by the operating system time.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() System {
	return System{}
}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	instant time.Time
}

// NewFixed creates a clock that always reports the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{instant: instant}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.instant
}
