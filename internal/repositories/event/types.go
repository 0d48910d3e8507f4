package event

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// CollectionName is the persisted collection holding the schedule
const CollectionName = "eventSchedule"

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errs.NotFound("event not found")

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID int
}

// CreateEventInput contains parameters for creating an event
type CreateEventInput struct {
	Event *models.Event
}

// SaveEventInput contains parameters for replacing an event
type SaveEventInput struct {
	Event *models.Event
}

// DeleteEventInput contains parameters for deleting an event
type DeleteEventInput struct {
	EventID int
}
