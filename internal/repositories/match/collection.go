package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
)

// Config holds configuration for the match repository
type Config struct {
	// Store persists the scoreboard
	Store document.Store

	// Seed is written when no scoreboard has been persisted yet
	Seed []models.Match
}

type collectionRepository struct {
	matches *document.Collection[models.Match]
}

// NewCollection loads the scoreboard, seeding it if absent
func NewCollection(ctx context.Context, cfg *Config) (*collectionRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	matches, err := document.OpenCollection(ctx, cfg.Store, CollectionName, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &collectionRepository{matches: matches}, nil
}

func (r *collectionRepository) ListMatches(ctx context.Context) ([]*models.Match, error) {
	var out []*models.Match
	r.matches.Read(func(items []models.Match) {
		out = make([]*models.Match, 0, len(items))
		for i := range items {
			m := items[i]
			out = append(out, &m)
		}
	})
	return out, nil
}

func (r *collectionRepository) CreateMatch(ctx context.Context, input *CreateMatchInput) (*models.Match, error) {
	if input == nil || input.Match == nil {
		return nil, errors.New("input and match cannot be nil")
	}

	created := *input.Match
	err := r.matches.Mutate(ctx, func(items []models.Match) ([]models.Match, error) {
		maxID := 0
		for i := range items {
			if items[i].ID > maxID {
				maxID = items[i].ID
			}
		}
		created.ID = maxID + 1
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SaveMatches replaces each given match by ID; nothing is written if any is missing
func (r *collectionRepository) SaveMatches(ctx context.Context, input *SaveMatchesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.matches.Mutate(ctx, func(items []models.Match) ([]models.Match, error) {
		for _, m := range input.Matches {
			if m == nil {
				return nil, errors.New("match cannot be nil")
			}
			i := indexOf(items, m.ID)
			if i < 0 {
				return nil, fmt.Errorf("%w: id %d", ErrMatchNotFound, m.ID)
			}
			items[i] = *m
		}
		return items, nil
	})
}

func (r *collectionRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.matches.Mutate(ctx, func(items []models.Match) ([]models.Match, error) {
		i := indexOf(items, input.MatchID)
		if i < 0 {
			return nil, ErrMatchNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

func indexOf(items []models.Match, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
