package cricket

import "context"

// Service maintains the cricket scoreboard
type Service interface {
	// ListMatches returns the scoreboard
	ListMatches(ctx context.Context) (*ListMatchesOutput, error)

	// CreateMatch adds an upcoming match between two teams
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// UpdateMatches merges a batch of partial match updates into the scoreboard
	UpdateMatches(ctx context.Context, input *UpdateMatchesInput) (*UpdateMatchesOutput, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
