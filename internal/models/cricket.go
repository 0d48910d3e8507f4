package models

// MatchStatus represents the current state of a cricket match
type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "Upcoming"
	MatchStatusLive      MatchStatus = "Live"
	MatchStatusCompleted MatchStatus = "Completed"
)

// InningsStatus represents the batting state of one side
type InningsStatus string

const (
	InningsStatusYetToBat  InningsStatus = "Yet to bat"
	InningsStatusBatting   InningsStatus = "Batting"
	InningsStatusAllOut    InningsStatus = "All Out"
	InningsStatusCompleted InningsStatus = "Completed"
)

// MaxWickets is the number of wickets that ends an innings
const MaxWickets = 10

// Innings is one side's live score in a match
type Innings struct {
	// Name is the batting team's name
	Name string `json:"name"`

	// Runs is the total scored
	Runs int `json:"runs"`

	// Wickets is the number of wickets fallen, 0 to MaxWickets
	Wickets int `json:"wickets"`

	// Overs is the number of overs bowled, e.g. 12.3
	Overs float64 `json:"overs"`

	// Status is the batting state
	Status InningsStatus `json:"status"`
}

// Match is an admin-maintained cricket scoreboard entry
type Match struct {
	// ID is the unique identifier for the match
	ID int `json:"id"`

	// Team1 is the first side's innings
	Team1 Innings `json:"team1"`

	// Team2 is the second side's innings
	Team2 Innings `json:"team2"`

	// MatchStatus is the match's state
	MatchStatus MatchStatus `json:"matchStatus"`

	// TossDecision is free text describing the toss outcome
	TossDecision string `json:"tossDecision"`
}

// NewInnings returns a fresh innings for a team that has not batted
func NewInnings(name string) Innings {
	return Innings{Name: name, Status: InningsStatusYetToBat}
}

// ValidMatchStatus reports whether s is a known match status
func ValidMatchStatus(s MatchStatus) bool {
	switch s {
	case MatchStatusUpcoming, MatchStatusLive, MatchStatusCompleted:
		return true
	}
	return false
}

// ValidInningsStatus reports whether s is a known innings status
func ValidInningsStatus(s InningsStatus) bool {
	switch s {
	case InningsStatusYetToBat, InningsStatusBatting, InningsStatusAllOut, InningsStatusCompleted:
		return true
	}
	return false
}
