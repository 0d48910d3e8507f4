package teamscore

import (
	"context"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// Repository defines the interface for the materialized team score table
type Repository interface {
	// ListTeamScores returns every team score row in storage order
	ListTeamScores(ctx context.Context) ([]*models.TeamScore, error)

	// GetTeamScore retrieves one team's row
	GetTeamScore(ctx context.Context, input *GetTeamScoreInput) (*models.TeamScore, error)

	// UpdateTeamScores upserts and removes rows in a single write
	UpdateTeamScores(ctx context.Context, input *UpdateTeamScoresInput) (*UpdateTeamScoresOutput, error)
}
