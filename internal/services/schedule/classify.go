package schedule

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/models"
)

// Classify places now relative to the half-open interval [start, end)
func Classify(start, end, now time.Time) models.EventState {
	switch {
	case now.Before(start):
		return models.EventStateUpcoming
	case now.Before(end):
		return models.EventStateLive
	default:
		return models.EventStateExpired
	}
}

// ValidState reports whether state is one Classify can return
func ValidState(state models.EventState) bool {
	switch state {
	case models.EventStateUpcoming, models.EventStateLive, models.EventStateExpired:
		return true
	}
	return false
}

func validateEvent(c *catalog.Catalog, e *models.Event) error {
	if !c.HasCategory(e.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
	}
	if !c.IsEvent(e.Category, e.Name) {
		return fmt.Errorf("%w: %q is not in %s", ErrUnknownEvent, e.Name, e.Category)
	}
	if _, err := time.Parse(models.DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	start, err := time.Parse(models.ClockLayout, e.Time)
	if err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidTime, e.Time)
	}
	end, err := time.Parse(models.ClockLayout, e.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidTime, e.EndTime)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTimeRange, e.Time, e.EndTime)
	}
	return nil
}
