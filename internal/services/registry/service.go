package registry

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	scoring         scoring.Service
	catalog         *catalog.Catalog
	writeLock       sync.Locker
}

// New creates a new registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.Scoring == nil {
		return nil, ErrNilScoring
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	writeLock := cfg.WriteLock
	if writeLock == nil {
		writeLock = &sync.Mutex{}
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		scoring:         cfg.Scoring,
		catalog:         cfg.Catalog,
		writeLock:       writeLock,
	}, nil
}

// ListParticipants returns participants ordered by team, then chess number
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	all, err := s.participantRepo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	participants := all
	if input != nil && input.Team != "" {
		participants = make([]*models.Participant, 0, len(all))
		for _, p := range all {
			if p.Team == input.Team {
				participants = append(participants, p)
			}
		}
	}

	SortParticipants(participants)
	return &ListParticipantsOutput{Participants: participants}, nil
}

// GetParticipant retrieves a participant by ID
func (s *service) GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}
	return &GetParticipantOutput{Participant: p}, nil
}

// CreateParticipant validates and registers a participant, then brings the
// team's score row into existence if this is the team's first participant
func (s *service) CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*CreateParticipantOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	team, err := required(input.Team, ErrMissingTeam)
	if err != nil {
		return nil, err
	}
	name, err := required(input.Name, ErrMissingName)
	if err != nil {
		return nil, err
	}
	chessNumber, err := required(input.ChessNumber, ErrMissingChessNumber)
	if err != nil {
		return nil, err
	}
	if err := validateChessNumber(s.catalog, team, chessNumber); err != nil {
		return nil, err
	}
	if err := validatePrograms(s.catalog, input.Programs); err != nil {
		return nil, err
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	created, err := s.participantRepo.CreateParticipant(ctx, &participantRepo.CreateParticipantInput{
		Participant: &models.Participant{
			Team:        team,
			ChessNumber: chessNumber,
			Name:        name,
			Programs:    append([]string(nil), input.Programs...),
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.scoring.SyncTeamScores(ctx, &scoring.SyncTeamScoresInput{
		Teams: []string{team},
	}); err != nil {
		return nil, err
	}

	log.Printf("Registered participant %d (%s) for %s", created.ID, created.Name, created.Team)

	return &CreateParticipantOutput{Participant: created}, nil
}

// UpdateParticipant merges the non-nil fields into the stored participant.
// Only the patched fields are validated, except that a team change re-checks
// the chess number against the new team.
func (s *service) UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}
	previousTeam := p.Team

	if input.Name != nil {
		if p.Name, err = required(*input.Name, ErrMissingName); err != nil {
			return nil, err
		}
	}
	if input.Team != nil {
		if p.Team, err = required(*input.Team, ErrMissingTeam); err != nil {
			return nil, err
		}
	}
	if input.ChessNumber != nil {
		if p.ChessNumber, err = required(*input.ChessNumber, ErrMissingChessNumber); err != nil {
			return nil, err
		}
	}
	if input.Team != nil || input.ChessNumber != nil {
		if err := validateChessNumber(s.catalog, p.Team, p.ChessNumber); err != nil {
			return nil, err
		}
	}
	if input.Programs != nil {
		if err := validatePrograms(s.catalog, *input.Programs); err != nil {
			return nil, err
		}
		p.Programs = append([]string(nil), (*input.Programs)...)
	}

	if err := s.participantRepo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{
		Participants: []*models.Participant{p},
	}); err != nil {
		return nil, err
	}

	if p.Team != previousTeam {
		if _, err := s.scoring.SyncTeamScores(ctx, &scoring.SyncTeamScoresInput{
			Teams: []string{previousTeam, p.Team},
		}); err != nil {
			return nil, err
		}
		log.Printf("Moved participant %d from %s to %s", p.ID, previousTeam, p.Team)
	}

	return &UpdateParticipantOutput{Participant: p}, nil
}

// DeleteParticipant removes a participant and recomputes its team
func (s *service) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*DeleteParticipantOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	deleted, err := s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.scoring.SyncTeamScores(ctx, &scoring.SyncTeamScoresInput{
		Teams: []string{deleted.Team},
	}); err != nil {
		return nil, err
	}

	log.Printf("Deleted participant %d (%s) from %s", deleted.ID, deleted.Name, deleted.Team)

	return &DeleteParticipantOutput{Participant: deleted}, nil
}

// SetScore overwrites the participant's score for a program it is registered
// for and recomputes the participant's current team
func (s *service) SetScore(ctx context.Context, input *SetScoreInput) (*SetScoreOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	if input.Program == "" {
		return nil, ErrMissingProgram
	}
	if math.IsNaN(input.Score) || math.IsInf(input.Score, 0) || input.Score < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, input.Score)
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}
	if !p.HasProgram(input.Program) {
		return nil, fmt.Errorf("%w: %s is not registered for %s", ErrNotEnrolled, p.Name, input.Program)
	}

	if p.Scores == nil {
		p.Scores = make(map[string]float64)
	}
	p.Scores[input.Program] = input.Score

	if err := s.participantRepo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{
		Participants: []*models.Participant{p},
	}); err != nil {
		return nil, err
	}

	synced, err := s.scoring.SyncTeamScores(ctx, &scoring.SyncTeamScoresInput{
		Teams: []string{p.Team},
	})
	if err != nil {
		return nil, err
	}

	output := &SetScoreOutput{Participant: p}
	for _, row := range synced.TeamScores {
		if row.Team == p.Team {
			output.TeamScore = row
		}
	}
	return output, nil
}
