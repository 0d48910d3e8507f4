package cricket

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	matchRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/match"
)

// CricketError is returned for construction problems
type CricketError string

// Error implements the error interface
func (e CricketError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    CricketError = "config cannot be nil"
	ErrNilMatchRepo CricketError = "match repository cannot be nil"
)

// ErrMatchNotFound is returned when no match has the requested ID
var ErrMatchNotFound = matchRepo.ErrMatchNotFound

var (
	ErrMissingTeamName    = errs.Validation("both team names are required")
	ErrInvalidRuns        = errs.Validation("runs cannot be negative")
	ErrInvalidWickets     = errs.Validation("wickets must be between 0 and 10")
	ErrInvalidOvers       = errs.Validation("overs must be a number of at least zero")
	ErrInvalidInnings     = errs.Validation("unknown innings status")
	ErrInvalidMatchStatus = errs.Validation("unknown match status")
	ErrDuplicateMatchID   = errs.Validation("match updated more than once in one batch")
)
