package scoring

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	teamScoreRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/teamscore"
)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	teamScoreRepo   teamScoreRepo.Repository
	catalog         *catalog.Catalog
	writeLock       sync.Locker

	// stale holds teams whose last sync failed to persist; guarded by writeLock
	stale map[string]bool
}

// New creates a new scoring service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.TeamScoreRepo == nil {
		return nil, ErrNilTeamScoreRepo
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
		teamScoreRepo:   cfg.TeamScoreRepo,
		catalog:         cfg.Catalog,
		writeLock:       writeLock,
		stale:           make(map[string]bool),
	}, nil
}

// SyncTeamScores recomputes each named team. A team with participants gets its
// row updated, or inserted if it has none. A team with no participants left
// loses its row rather than keeping a zero score.
//
// Callers mutating participants hold the write lock; SyncTeamScores does not take it.
func (s *service) SyncTeamScores(ctx context.Context, input *SyncTeamScoresInput) (*SyncTeamScoresOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	participants, err := s.participantRepo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	return s.sync(ctx, participants, uniqueTeams(input.Teams))
}

// Rebuild recomputes every team that has a row or a participant
func (s *service) Rebuild(ctx context.Context) (*SyncTeamScoresOutput, error) {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	participants, err := s.participantRepo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.teamScoreRepo.ListTeamScores(ctx)
	if err != nil {
		return nil, err
	}

	var teams []string
	for _, row := range rows {
		teams = append(teams, row.Team)
	}
	for _, p := range participants {
		teams = append(teams, p.Team)
	}

	return s.sync(ctx, participants, uniqueTeams(teams))
}

// sync recomputes teams plus any team left stale by an earlier failed write.
// If the write fails, every team it covered is remembered as stale.
func (s *service) sync(ctx context.Context, participants []*models.Participant, teams []string) (*SyncTeamScoresOutput, error) {
	teams = uniqueTeams(append(teams, s.staleTeams()...))

	members := make(map[string]int)
	for _, p := range participants {
		members[p.Team]++
	}

	update := &teamScoreRepo.UpdateTeamScoresInput{}
	for _, team := range teams {
		if members[team] == 0 {
			update.Remove = append(update.Remove, team)
			continue
		}
		update.Set = append(update.Set, &models.TeamScore{
			Team:  team,
			Score: RecomputeTeamScore(participants, team),
		})
	}

	changes, err := s.teamScoreRepo.UpdateTeamScores(ctx, update)
	if err != nil {
		for _, team := range teams {
			s.stale[team] = true
		}
		log.Printf("Team scores for %v are stale until the next sync: %v", teams, err)
		return nil, err
	}
	for _, team := range teams {
		delete(s.stale, team)
	}

	for _, row := range update.Set {
		log.Printf("Recalculated total score for %s: %v", row.Team, row.Score)
	}
	for _, team := range changes.Removed {
		log.Printf("Removed team score for %s: no participants remain", team)
	}

	return &SyncTeamScoresOutput{
		TeamScores: update.Set,
		Removed:    changes.Removed,
	}, nil
}

// ListTeamScores returns the team score table
func (s *service) ListTeamScores(ctx context.Context) (*ListTeamScoresOutput, error) {
	rows, err := s.teamScoreRepo.ListTeamScores(ctx)
	if err != nil {
		return nil, err
	}
	return &ListTeamScoresOutput{TeamScores: rows}, nil
}

// TopParticipants computes the individual leaderboard on every call
func (s *service) TopParticipants(ctx context.Context, input *TopParticipantsInput) (*TopParticipantsOutput, error) {
	limit := DefaultTopLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	participants, err := s.participantRepo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	return &TopParticipantsOutput{
		Standings: Standings(participants, limit),
	}, nil
}

// ApplyRanks validates the whole batch before writing anything. Every
// participant score is written in one collection rewrite, then the affected
// teams are recomputed.
func (s *service) ApplyRanks(ctx context.Context, input *ApplyRanksInput) (*ApplyRanksOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	category, ok := s.catalog.CategoryOf(input.Program)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, input.Program)
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	participants, err := s.participantRepo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	rankedBy := make(map[string]int)
	seen := make(map[int]bool)
	var updated []*models.Participant
	for _, assignment := range input.Assignments {
		if assignment.Rank == "" {
			continue
		}

		score, ok := s.catalog.RankScore(category, assignment.Rank)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownRank, assignment.Rank, category)
		}
		if other, taken := rankedBy[assignment.Rank]; taken {
			return nil, fmt.Errorf("%w: %s given to participants %d and %d",
				ErrDuplicateRank, assignment.Rank, other, assignment.ParticipantID)
		}
		rankedBy[assignment.Rank] = assignment.ParticipantID

		if seen[assignment.ParticipantID] {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateParticipant, assignment.ParticipantID)
		}
		seen[assignment.ParticipantID] = true

		p, ok := byID[assignment.ParticipantID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", participantRepo.ErrParticipantNotFound, assignment.ParticipantID)
		}
		if !p.HasProgram(input.Program) {
			return nil, fmt.Errorf("%w: %s is not registered for %s", ErrNotEnrolled, p.Name, input.Program)
		}

		if p.Scores == nil {
			p.Scores = make(map[string]float64)
		}
		p.Scores[input.Program] = score
		updated = append(updated, p)
	}

	if len(updated) == 0 {
		return nil, ErrNoRanks
	}

	if err := s.participantRepo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{
		Participants: updated,
	}); err != nil {
		return nil, err
	}

	var teams []string
	for _, p := range updated {
		teams = append(teams, p.Team)
	}
	synced, err := s.sync(ctx, participants, uniqueTeams(teams))
	if err != nil {
		return nil, err
	}

	log.Printf("Applied %d ranks for %s", len(updated), input.Program)

	return &ApplyRanksOutput{
		Participants: updated,
		TeamScores:   synced.TeamScores,
	}, nil
}

func (s *service) staleTeams() []string {
	teams := make([]string, 0, len(s.stale))
	for team := range s.stale {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

func uniqueTeams(teams []string) []string {
	seen := make(map[string]bool, len(teams))
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		if team == "" || seen[team] {
			continue
		}
		seen[team] = true
		out = append(out, team)
	}
	return out
}
