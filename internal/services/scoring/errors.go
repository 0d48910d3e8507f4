package scoring

import "github.com/KirkDiggler/sportsmeet/internal/common/errs"

// ScoringError is returned for construction problems
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          ScoringError = "config cannot be nil"
	ErrNilParticipantRepo ScoringError = "participant repository cannot be nil"
	ErrNilTeamScoreRepo   ScoringError = "team score repository cannot be nil"
	ErrNilCatalog         ScoringError = "catalog cannot be nil"
)

var (
	ErrDuplicateRank        = errs.Validation("each rank may be assigned to only one participant per program")
	ErrDuplicateParticipant = errs.Validation("participant ranked more than once")
	ErrUnknownProgram       = errs.Validation("unknown program")
	ErrUnknownRank          = errs.Validation("unknown rank")
	ErrNotEnrolled          = errs.Validation("participant is not registered for the program")
	ErrNoRanks              = errs.Validation("no ranks selected to update")
)
