package scoring

import (
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
	teamScoreRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/teamscore"
)

// DefaultTopLimit is the size of the individual leaderboard
const DefaultTopLimit = 10

// Config holds configuration for the scoring service
type Config struct {
	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	TeamScoreRepo   teamScoreRepo.Repository

	// Catalog supplies the rank to score tables
	Catalog *catalog.Catalog

	// WriteLock serializes participant mutations; share it with the registry.
	// A private lock is used when nil.
	WriteLock sync.Locker
}

// SyncTeamScoresInput names the teams to recompute
type SyncTeamScoresInput struct {
	Teams []string
}

// SyncTeamScoresOutput contains the recomputed rows
type SyncTeamScoresOutput struct {
	// TeamScores are the rows written, one per team that still has participants
	TeamScores []*models.TeamScore

	// Removed lists teams whose rows were deleted because no participants remain
	Removed []string
}

// ListTeamScoresOutput contains the team score table
type ListTeamScoresOutput struct {
	TeamScores []*models.TeamScore
}

// TopParticipantsInput contains parameters for the individual leaderboard
type TopParticipantsInput struct {
	// Limit defaults to DefaultTopLimit when not positive
	Limit int
}

// TopParticipantsOutput contains the leaderboard, highest total first
type TopParticipantsOutput struct {
	Standings []*models.ParticipantStanding
}

// RankAssignment places one participant in a program
type RankAssignment struct {
	ParticipantID int

	// Rank is a key of the program category's rank table, e.g. "1st".
	// An empty rank is ignored.
	Rank string
}

// ApplyRanksInput contains one program's batch of placements
type ApplyRanksInput struct {
	Program     string
	Assignments []RankAssignment
}

// ApplyRanksOutput contains the updated participants and team rows
type ApplyRanksOutput struct {
	Participants []*models.Participant
	TeamScores   []*models.TeamScore
}
