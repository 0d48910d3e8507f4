package teamscore

import (
	"context"
	"errors"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
)

// Config holds configuration for the team score repository
type Config struct {
	// Store persists the team score collection
	Store document.Store
}

// collectionRepository implements the Repository interface over a document collection
type collectionRepository struct {
	scores *document.Collection[models.TeamScore]
}

// NewCollection loads the team score collection and returns a repository over it
func NewCollection(ctx context.Context, cfg *Config) (*collectionRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	scores, err := document.OpenCollection[models.TeamScore](ctx, cfg.Store, CollectionName, nil)
	if err != nil {
		return nil, err
	}

	return &collectionRepository{scores: scores}, nil
}

// ListTeamScores returns copies of every row
func (r *collectionRepository) ListTeamScores(ctx context.Context) ([]*models.TeamScore, error) {
	var out []*models.TeamScore
	r.scores.Read(func(items []models.TeamScore) {
		out = make([]*models.TeamScore, 0, len(items))
		for i := range items {
			row := items[i]
			out = append(out, &row)
		}
	})
	return out, nil
}

// GetTeamScore retrieves a copy of one team's row
func (r *collectionRepository) GetTeamScore(ctx context.Context, input *GetTeamScoreInput) (*models.TeamScore, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var found *models.TeamScore
	r.scores.Read(func(items []models.TeamScore) {
		if i := indexOf(items, input.Team); i >= 0 {
			row := items[i]
			found = &row
		}
	})
	if found == nil {
		return nil, ErrTeamScoreNotFound
	}
	return found, nil
}

// UpdateTeamScores applies upserts, then removals, and rewrites the collection once
func (r *collectionRepository) UpdateTeamScores(ctx context.Context, input *UpdateTeamScoresInput) (*UpdateTeamScoresOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &UpdateTeamScoresOutput{}
	if len(input.Set) == 0 && len(input.Remove) == 0 {
		return output, nil
	}

	err := r.scores.Mutate(ctx, func(items []models.TeamScore) ([]models.TeamScore, error) {
		for _, row := range input.Set {
			if row == nil || row.Team == "" {
				return nil, errors.New("team score must name a team")
			}
			if i := indexOf(items, row.Team); i >= 0 {
				items[i].Score = row.Score
				output.Updated = append(output.Updated, row.Team)
				continue
			}
			items = append(items, *row)
			output.Inserted = append(output.Inserted, row.Team)
		}
		for _, team := range input.Remove {
			if i := indexOf(items, team); i >= 0 {
				items = append(items[:i], items[i+1:]...)
				output.Removed = append(output.Removed, team)
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func indexOf(items []models.TeamScore, team string) int {
	for i := range items {
		if items[i].Team == team {
			return i
		}
	}
	return -1
}
