package cricket

import (
	"github.com/KirkDiggler/sportsmeet/internal/models"
	matchRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/match"
)

// Config holds configuration for the cricket service
type Config struct {
	MatchRepo matchRepo.Repository
}

// ListMatchesOutput contains the scoreboard
type ListMatchesOutput struct {
	Matches []*models.Match
}

// CreateMatchInput contains the two team names
type CreateMatchInput struct {
	Team1Name string
	Team2Name string
}

// CreateMatchOutput contains the created match
type CreateMatchOutput struct {
	Match *models.Match
}

// InningsUpdate is a partial update of one side. Nil fields are left unchanged.
type InningsUpdate struct {
	Name    *string
	Runs    *int
	Wickets *int
	Overs   *float64
	Status  *models.InningsStatus
}

// MatchUpdate is a partial update of one match, selected by ID
type MatchUpdate struct {
	ID int

	Team1        *InningsUpdate
	Team2        *InningsUpdate
	MatchStatus  *models.MatchStatus
	TossDecision *string
}

// UpdateMatchesInput contains a batch of match updates
type UpdateMatchesInput struct {
	Updates []MatchUpdate
}

// UpdateMatchesOutput contains the scoreboard after the batch
type UpdateMatchesOutput struct {
	// Matches is the full scoreboard
	Matches []*models.Match

	// UpdatedIDs lists the matches the batch changed
	UpdatedIDs []int

	// SkippedIDs lists update IDs that matched no match
	SkippedIDs []int
}

// DeleteMatchInput contains parameters for removing a match
type DeleteMatchInput struct {
	MatchID int
}
