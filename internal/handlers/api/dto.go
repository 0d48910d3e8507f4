package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/cricket"
)

// number decodes from a JSON number or from a string holding one, since form
// inputs are often posted as text
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%q is not a number", raw)
	}
	*n = number(f)
	return nil
}

func (n *number) wholeNumber(field string) (*int, error) {
	if n == nil {
		return nil, nil
	}
	f := float64(*n)
	if f != math.Trunc(f) {
		return nil, errs.Validationf("%s must be a whole number, got %v", field, f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil, errs.Validationf("%s is out of range, got %v", field, f)
	}
	i := int(f)
	return &i, nil
}

func (n *number) float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createParticipantRequest struct {
	Team        string   `json:"team"`
	ChessNumber string   `json:"chessNumber"`
	Name        string   `json:"name"`
	Programs    []string `json:"programs"`
}

type updateParticipantRequest struct {
	Team        *string   `json:"team"`
	ChessNumber *string   `json:"chessNumber"`
	Name        *string   `json:"name"`
	Programs    *[]string `json:"programs"`
}

// setScoreRequest carries team for compatibility; the participant's stored team is used
type setScoreRequest struct {
	Program string  `json:"program"`
	Score   *number `json:"score"`
	Team    string  `json:"team"`
}

type rankRequest struct {
	ParticipantID int    `json:"participantId"`
	Rank          string `json:"rank"`
}

type applyRanksRequest struct {
	Program string        `json:"program"`
	Ranks   []rankRequest `json:"ranks"`
}

type applyRanksResponse struct {
	Participants []*models.Participant `json:"participants"`
	TeamScores   []*models.TeamScore   `json:"teamScores"`
}

type createEventRequest struct {
	Category models.EventCategory `json:"category"`
	Name     string               `json:"name"`
	Date     string               `json:"date"`
	Time     string               `json:"time"`
	EndTime  string               `json:"endTime"`
}

type updateEventRequest struct {
	Category *models.EventCategory `json:"category"`
	Name     *string               `json:"name"`
	Date     *string               `json:"date"`
	Time     *string               `json:"time"`
	EndTime  *string               `json:"endTime"`
}

type createMatchRequest struct {
	Team1Name string `json:"team1Name"`
	Team2Name string `json:"team2Name"`
}

type inningsRequest struct {
	Name    *string               `json:"name"`
	Runs    *number               `json:"runs"`
	Wickets *number               `json:"wickets"`
	Overs   *number               `json:"overs"`
	Status  *models.InningsStatus `json:"status"`
}

func (r *inningsRequest) toUpdate() (*cricket.InningsUpdate, error) {
	if r == nil {
		return nil, nil
	}
	runs, err := r.Runs.wholeNumber("runs")
	if err != nil {
		return nil, err
	}
	wickets, err := r.Wickets.wholeNumber("wickets")
	if err != nil {
		return nil, err
	}
	return &cricket.InningsUpdate{
		Name:    r.Name,
		Runs:    runs,
		Wickets: wickets,
		Overs:   r.Overs.float(),
		Status:  r.Status,
	}, nil
}

type matchRequest struct {
	ID           int                 `json:"id"`
	Team1        *inningsRequest     `json:"team1"`
	Team2        *inningsRequest     `json:"team2"`
	MatchStatus  *models.MatchStatus `json:"matchStatus"`
	TossDecision *string             `json:"tossDecision"`
}

func (r *matchRequest) toUpdate() (cricket.MatchUpdate, error) {
	team1, err := r.Team1.toUpdate()
	if err != nil {
		return cricket.MatchUpdate{}, fmt.Errorf("match %d team1: %w", r.ID, err)
	}
	team2, err := r.Team2.toUpdate()
	if err != nil {
		return cricket.MatchUpdate{}, fmt.Errorf("match %d team2: %w", r.ID, err)
	}
	return cricket.MatchUpdate{
		ID:           r.ID,
		Team1:        team1,
		Team2:        team2,
		MatchStatus:  r.MatchStatus,
		TossDecision: r.TossDecision,
	}, nil
}
