package models

// ParticipantStanding is a participant's position on the individual leaderboard
type ParticipantStanding struct {
	// ID is the participant's ID
	ID int `json:"id"`

	// Name is the participant's display name
	Name string `json:"name"`

	// Team is the participant's team
	Team string `json:"team"`

	// TotalScore is the sum of the participant's program scores
	TotalScore float64 `json:"totalScore"`
}
