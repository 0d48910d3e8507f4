package cricket

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// validate checks the fields an update sets without looking at the stored match
func (u *MatchUpdate) validate() error {
	if u.MatchStatus != nil && !models.ValidMatchStatus(*u.MatchStatus) {
		return fmt.Errorf("%w: match %d: %q", ErrInvalidMatchStatus, u.ID, *u.MatchStatus)
	}
	if err := u.Team1.validate(); err != nil {
		return fmt.Errorf("match %d team1: %w", u.ID, err)
	}
	if err := u.Team2.validate(); err != nil {
		return fmt.Errorf("match %d team2: %w", u.ID, err)
	}
	return nil
}

func (u *InningsUpdate) validate() error {
	if u == nil {
		return nil
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return ErrMissingTeamName
	}
	if u.Runs != nil && *u.Runs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRuns, *u.Runs)
	}
	if u.Wickets != nil && (*u.Wickets < 0 || *u.Wickets > models.MaxWickets) {
		return fmt.Errorf("%w: %d", ErrInvalidWickets, *u.Wickets)
	}
	if u.Overs != nil && (math.IsNaN(*u.Overs) || math.IsInf(*u.Overs, 0) || *u.Overs < 0) {
		return fmt.Errorf("%w: %v", ErrInvalidOvers, *u.Overs)
	}
	if u.Status != nil && !models.ValidInningsStatus(*u.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidInnings, *u.Status)
	}
	return nil
}

// apply merges the update into m. Innings are merged field by field.
func (u *MatchUpdate) apply(m *models.Match) {
	if u.MatchStatus != nil {
		m.MatchStatus = *u.MatchStatus
	}
	if u.TossDecision != nil {
		m.TossDecision = *u.TossDecision
	}
	u.Team1.apply(&m.Team1)
	u.Team2.apply(&m.Team2)
}

func (u *InningsUpdate) apply(in *models.Innings) {
	if u == nil {
		return
	}
	if u.Name != nil {
		in.Name = strings.TrimSpace(*u.Name)
	}
	if u.Runs != nil {
		in.Runs = *u.Runs
	}
	if u.Wickets != nil {
		in.Wickets = *u.Wickets
	}
	if u.Overs != nil {
		in.Overs = *u.Overs
	}
	if u.Status != nil {
		in.Status = *u.Status
	}
}
