package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/sportsmeet/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// VenueClock reports the current time in the venue's local time zone
type VenueClock struct {
	location *time.Location
}

// New creates a clock for the given location, falling back to time.Local
func New(location *time.Location) *VenueClock {
	if location == nil {
		location = time.Local
	}
	return &VenueClock{location: location}
}

// Now returns the current wall-clock time at the venue
func (c *VenueClock) Now() time.Time {
	return time.Now().In(c.location)
}

// Location returns the venue time zone
func (c *VenueClock) Location() *time.Location {
	return c.location
}
