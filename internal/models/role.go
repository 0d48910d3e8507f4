package models

// Role is what a logged-in account may do
type Role string

const (
	// RoleAdmin manages scores, schedule and the cricket scoreboard
	RoleAdmin Role = "admin"

	// RoleTeamLeader registers participants for their own team
	RoleTeamLeader Role = "team_leader"
)
