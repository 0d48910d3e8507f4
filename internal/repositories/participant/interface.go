package participant

import (
	"context"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sportsmeet/internal/repositories/participant Repository

// Repository defines the interface for participant persistence
type Repository interface {
	// ListParticipants returns every participant in storage order
	ListParticipants(ctx context.Context) ([]*models.Participant, error)

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// CreateParticipant assigns the next ID and persists a new participant
	CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*models.Participant, error)

	// SaveParticipants replaces existing participants in one write
	SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error

	// DeleteParticipant removes a participant and returns the removed record
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*models.Participant, error)
}
