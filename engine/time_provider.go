package engine

import "time"

// TimeProvider supplies the current time to timed transitions
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider provides the real system time with monotonic clock readings
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a new monotonic time provider
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
