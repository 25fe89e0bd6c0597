package engine

import "time"

// TimeProvider is the wall-clock source for result timestamps and event metadata
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider provides the real system time with monotonic clock readings
type SystemTimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
