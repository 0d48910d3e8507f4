package match

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// CollectionName is the persisted collection holding cricket matches
const CollectionName = "cricketScores"

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errs.NotFound("cricket match not found")

// CreateMatchInput contains parameters for creating a match
type CreateMatchInput struct {
	Match *models.Match
}

// SaveMatchesInput contains parameters for replacing matches
type SaveMatchesInput struct {
	Matches []*models.Match
}

// DeleteMatchInput contains parameters for deleting a match
type DeleteMatchInput struct {
	MatchID int
}
