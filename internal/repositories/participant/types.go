package participant

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// CollectionName is the persisted collection holding participants
const CollectionName = "teamData"

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errs.NotFound("participant not found")

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID int
}

// CreateParticipantInput contains parameters for creating a participant.
// The participant's ID is ignored and assigned by the repository.
type CreateParticipantInput struct {
	Participant *models.Participant
}

// SaveParticipantsInput contains parameters for replacing participants
type SaveParticipantsInput struct {
	Participants []*models.Participant
}

// DeleteParticipantInput contains parameters for deleting a participant
type DeleteParticipantInput struct {
	ParticipantID int
}
