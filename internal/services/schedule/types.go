package schedule

import (
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/clock"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	eventRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/event"
)

// Config holds configuration for the schedule service
type Config struct {
	EventRepo eventRepo.Repository
	Catalog   *catalog.Catalog
	Clock     clock.Clock

	// Location is the venue time zone event dates and times are read in.
	// Defaults to time.Local.
	Location *time.Location
}

// ListEventsInput contains parameters for listing events
type ListEventsInput struct {
	// State restricts the result to events in that state when set
	State models.EventState
}

// ListEventsOutput contains the classified schedule
type ListEventsOutput struct {
	Events []*models.ScheduledEvent

	// Now is the time the events were classified against
	Now time.Time
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID int
}

// GetEventOutput contains the event
type GetEventOutput struct {
	Event *models.ScheduledEvent
}

// CreateEventInput contains parameters for scheduling an event
type CreateEventInput struct {
	Category models.EventCategory
	Name     string
	Date     string
	Time     string
	EndTime  string
}

// CreateEventOutput contains the created event
type CreateEventOutput struct {
	Event *models.Event
}

// UpdateEventInput is a partial update. Nil fields are left unchanged.
type UpdateEventInput struct {
	EventID int

	Category *models.EventCategory
	Name     *string
	Date     *string
	Time     *string
	EndTime  *string
}

// UpdateEventOutput contains the updated event
type UpdateEventOutput struct {
	Event *models.Event
}

// DeleteEventInput contains parameters for removing an event
type DeleteEventInput struct {
	EventID int
}
