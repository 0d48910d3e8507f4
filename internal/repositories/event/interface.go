package event

import (
	"context"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sportsmeet/internal/repositories/event Repository

// Repository defines the interface for event schedule persistence
type Repository interface {
	// ListEvents returns every event in storage order
	ListEvents(ctx context.Context) ([]*models.Event, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// CreateEvent assigns the next ID and persists a new event
	CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error)

	// SaveEvent replaces an existing event
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error
}
