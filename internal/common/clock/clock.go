package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go coinsync/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// Millis converts a time to the wall-clock millisecond representation used
// by multiplier end times.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
