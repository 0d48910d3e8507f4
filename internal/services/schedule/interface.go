package schedule

import "context"

// Service manages the event schedule
type Service interface {
	// ListEvents returns events ordered by start time with their current state
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// GetEvent retrieves an event with its current state
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)

	// CreateEvent schedules a new event
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// UpdateEvent applies a partial update to an event
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*UpdateEventOutput, error)

	// DeleteEvent removes an event from the schedule
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error
}
