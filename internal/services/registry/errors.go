package registry

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	participantRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/participant"
)

// RegistryError is returned for construction problems
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          RegistryError = "config cannot be nil"
	ErrNilParticipantRepo RegistryError = "participant repository cannot be nil"
	ErrNilScoring         RegistryError = "scoring service cannot be nil"
	ErrNilCatalog         RegistryError = "catalog cannot be nil"
)

// ErrParticipantNotFound is returned when no participant has the requested ID
var ErrParticipantNotFound = participantRepo.ErrParticipantNotFound

var (
	ErrCategoryLimitExceeded = errs.Validation("too many programs selected from the capped category")
	ErrMissingTeam           = errs.Validation("team is required")
	ErrMissingName           = errs.Validation("name is required")
	ErrMissingChessNumber    = errs.Validation("chess number is required")
	ErrInvalidChessNumber    = errs.Validation("invalid chess number")
	ErrNoPrograms            = errs.Validation("at least one program is required")
	ErrUnknownProgram        = errs.Validation("unknown program")
	ErrDuplicateProgram      = errs.Validation("program selected more than once")
	ErrMissingProgram        = errs.Validation("program is required")
	ErrNotEnrolled           = errs.Validation("participant is not registered for the program")
	ErrInvalidScore          = errs.Validation("score must be a finite number of at least zero")
)
