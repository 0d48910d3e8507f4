package registry

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sportsmeet/internal/services/registry Service

// Service manages team participants and their program registrations
type Service interface {
	// ListParticipants returns participants ordered by team, then chess number
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error)

	// CreateParticipant registers a new participant for a team
	CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*CreateParticipantOutput, error)

	// UpdateParticipant applies a partial update to a participant
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// DeleteParticipant removes a participant
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*DeleteParticipantOutput, error)

	// SetScore records a participant's score for one program
	SetScore(ctx context.Context, input *SetScoreInput) (*SetScoreOutput, error)
}
