package registry

import (
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
)

// Config holds configuration for the registry service
type Config struct {
	ParticipantRepo participantRepo.Repository
	Scoring         scoring.Service
	Catalog         *catalog.Catalog

	// WriteLock must be the lock given to the scoring service
	WriteLock sync.Locker
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct {
	// Team restricts the result to one team when set
	Team string
}

// ListParticipantsOutput contains the sorted participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID int
}

// GetParticipantOutput contains the participant
type GetParticipantOutput struct {
	Participant *models.Participant
}

// CreateParticipantInput contains parameters for registering a participant
type CreateParticipantInput struct {
	Team        string
	ChessNumber string
	Name        string
	Programs    []string
}

// CreateParticipantOutput contains the created participant
type CreateParticipantOutput struct {
	Participant *models.Participant
}

// UpdateParticipantInput is a partial update. Nil fields are left unchanged.
type UpdateParticipantInput struct {
	ParticipantID int

	Team        *string
	ChessNumber *string
	Name        *string
	Programs    *[]string
}

// UpdateParticipantOutput contains the updated participant
type UpdateParticipantOutput struct {
	Participant *models.Participant
}

// DeleteParticipantInput contains parameters for removing a participant
type DeleteParticipantInput struct {
	ParticipantID int
}

// DeleteParticipantOutput contains the removed participant
type DeleteParticipantOutput struct {
	Participant *models.Participant
}

// SetScoreInput contains parameters for scoring one program
type SetScoreInput struct {
	ParticipantID int
	Program       string
	Score         float64
}

// SetScoreOutput contains the scored participant and its team's new total
type SetScoreOutput struct {
	Participant *models.Participant
	TeamScore   *models.TeamScore
}
