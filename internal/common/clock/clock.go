package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/fitna/internal/common/clock Clock

// Clock is the source of timestamps for rooms, players and questions
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
