package models

// TeamScore is the materialized total of every score awarded to a team's participants
type TeamScore struct {
	// Team is the team name and the record's key
	Team string `json:"team"`

	// Score is the sum of all participant scores for the team
	Score float64 `json:"score"`
}
