package schedule

import (
	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	eventRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/event"
)

// ScheduleError is returned for construction problems
type ScheduleError string

// Error implements the error interface
func (e ScheduleError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    ScheduleError = "config cannot be nil"
	ErrNilEventRepo ScheduleError = "event repository cannot be nil"
	ErrNilCatalog   ScheduleError = "catalog cannot be nil"
	ErrNilClock     ScheduleError = "clock cannot be nil"
)

// ErrEventNotFound is returned when no event has the requested ID
var ErrEventNotFound = eventRepo.ErrEventNotFound

var (
	ErrUnknownCategory  = errs.Validation("unknown event category")
	ErrUnknownEvent     = errs.Validation("event does not belong to the category")
	ErrInvalidDate      = errs.Validation("date must be formatted YYYY-MM-DD")
	ErrInvalidTime      = errs.Validation("time must be formatted HH:MM")
	ErrInvalidTimeRange = errs.Validation("end time must be after start time")
	ErrUnknownState     = errs.Validation("unknown event state")
)
