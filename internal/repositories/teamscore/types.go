package teamscore

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// CollectionName is the persisted collection holding team scores
const CollectionName = "teamScores"

// ErrTeamScoreNotFound is returned when a team has no score row
var ErrTeamScoreNotFound = errs.NotFound("team score not found")

// GetTeamScoreInput contains parameters for retrieving a team score
type GetTeamScoreInput struct {
	Team string
}

// UpdateTeamScoresInput contains the rows to write
type UpdateTeamScoresInput struct {
	// Set rows replace the existing row for their team, or are appended
	Set []*models.TeamScore

	// Remove lists teams whose rows are deleted; absent teams are ignored
	Remove []string
}

// UpdateTeamScoresOutput reports what changed
type UpdateTeamScoresOutput struct {
	Inserted []string
	Updated  []string
	Removed  []string
}
