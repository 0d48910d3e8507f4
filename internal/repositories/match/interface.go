package match

import (
	"context"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// Repository defines the interface for cricket scoreboard persistence
type Repository interface {
	// ListMatches returns every match in storage order
	ListMatches(ctx context.Context) ([]*models.Match, error)

	// CreateMatch assigns the next ID and persists a new match
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*models.Match, error)

	// SaveMatches replaces existing matches in one write
	SaveMatches(ctx context.Context, input *SaveMatchesInput) error

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
