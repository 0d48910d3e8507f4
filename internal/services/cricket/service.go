package cricket

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	matchRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/match"
)

// service implements the Service interface
type service struct {
	matchRepo matchRepo.Repository
	mu        sync.Mutex
}

// New creates a new cricket service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	return &service{
		matchRepo: cfg.MatchRepo,
	}, nil
}

// ListMatches returns the scoreboard
func (s *service) ListMatches(ctx context.Context) (*ListMatchesOutput, error) {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	return &ListMatchesOutput{Matches: matches}, nil
}

// CreateMatch adds an upcoming match in which neither side has batted
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	team1 := strings.TrimSpace(input.Team1Name)
	team2 := strings.TrimSpace(input.Team2Name)
	if team1 == "" || team2 == "" {
		return nil, ErrMissingTeamName
	}

	created, err := s.matchRepo.CreateMatch(ctx, &matchRepo.CreateMatchInput{
		Match: &models.Match{
			Team1:       models.NewInnings(team1),
			Team2:       models.NewInnings(team2),
			MatchStatus: models.MatchStatusUpcoming,
		},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Added cricket match %d: %s vs %s", created.ID, team1, team2)

	return &CreateMatchOutput{Match: created}, nil
}

// UpdateMatches validates every update before writing. Updates for unknown
// IDs are skipped and reported; the rest are saved in one write.
func (s *service) UpdateMatches(ctx context.Context, input *UpdateMatchesInput) (*UpdateMatchesOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	seen := make(map[int]bool, len(input.Updates))
	for i := range input.Updates {
		update := &input.Updates[i]
		if seen[update.ID] {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateMatchID, update.ID)
		}
		seen[update.ID] = true

		if err := update.validate(); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*models.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	output := &UpdateMatchesOutput{}
	var changed []*models.Match
	for i := range input.Updates {
		update := &input.Updates[i]
		m, ok := byID[update.ID]
		if !ok {
			output.SkippedIDs = append(output.SkippedIDs, update.ID)
			continue
		}
		update.apply(m)
		changed = append(changed, m)
		output.UpdatedIDs = append(output.UpdatedIDs, m.ID)
	}

	if len(output.SkippedIDs) > 0 {
		log.Printf("Skipped cricket updates for unknown matches %v", output.SkippedIDs)
	}

	if len(changed) > 0 {
		if err := s.matchRepo.SaveMatches(ctx, &matchRepo.SaveMatchesInput{Matches: changed}); err != nil {
			return nil, err
		}
	}

	output.Matches = matches
	return output, nil
}

// DeleteMatch removes a match
func (s *service) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{MatchID: input.MatchID}); err != nil {
		return err
	}

	log.Printf("Deleted cricket match %d", input.MatchID)
	return nil
}
