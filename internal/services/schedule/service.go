package schedule

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/clock"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	eventRepo "github.com/KirkDiggler/sportsmeet/internal/repositories/event"
)

// service implements the Service interface
type service struct {
	eventRepo eventRepo.Repository
	catalog   *catalog.Catalog
	clock     clock.Clock
	location  *time.Location
	mu        sync.Mutex
}

// New creates a new schedule service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &service{
		eventRepo: cfg.EventRepo,
		catalog:   cfg.Catalog,
		clock:     cfg.Clock,
		location:  location,
	}, nil
}

type classified struct {
	event *models.ScheduledEvent
	start time.Time
}

// ListEvents classifies every event against the clock. Events whose stored
// date or times cannot be parsed are logged and left out.
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	var filter models.EventState
	if input != nil {
		filter = input.State
	}
	if filter != "" && !ValidState(filter) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, filter)
	}

	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().In(s.location)
	items := make([]classified, 0, len(events))
	for _, e := range events {
		start, end, err := e.Window(s.location)
		if err != nil {
			log.Printf("Skipping event %d: %v", e.ID, err)
			continue
		}
		state := Classify(start, end, now)
		if filter != "" && state != filter {
			continue
		}
		items = append(items, classified{
			event: &models.ScheduledEvent{Event: *e, State: state},
			start: start,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].start.Before(items[j].start)
	})

	output := &ListEventsOutput{
		Events: make([]*models.ScheduledEvent, 0, len(items)),
		Now:    now,
	}
	for _, item := range items {
		output.Events = append(output.Events, item.event)
	}
	return output, nil
}

// GetEvent retrieves an event with its current state
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	e, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}
	start, end, err := e.Window(s.location)
	if err != nil {
		return nil, err
	}

	return &GetEventOutput{
		Event: &models.ScheduledEvent{
			Event: *e,
			State: Classify(start, end, s.clock.Now().In(s.location)),
		},
	}, nil
}

// CreateEvent validates and schedules an event
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	e := &models.Event{
		Category: input.Category,
		Name:     input.Name,
		Date:     input.Date,
		Time:     input.Time,
		EndTime:  input.EndTime,
	}
	if err := validateEvent(s.catalog, e); err != nil {
		return nil, err
	}

	created, err := s.eventRepo.CreateEvent(ctx, &eventRepo.CreateEventInput{Event: e})
	if err != nil {
		return nil, err
	}

	log.Printf("Scheduled %s on %s %s-%s as event %d", created.Name, created.Date, created.Time, created.EndTime, created.ID)

	return &CreateEventOutput{Event: created}, nil
}

// UpdateEvent merges the non-nil fields and validates the resulting event
func (s *service) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*UpdateEventOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		e.Category = *input.Category
	}
	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Date != nil {
		e.Date = *input.Date
	}
	if input.Time != nil {
		e.Time = *input.Time
	}
	if input.EndTime != nil {
		e.EndTime = *input.EndTime
	}
	if err := validateEvent(s.catalog, e); err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: e}); err != nil {
		return nil, err
	}
	return &UpdateEventOutput{Event: e}, nil
}

// DeleteEvent removes an event from the schedule
func (s *service) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}

	if err := s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{EventID: input.EventID}); err != nil {
		return err
	}

	log.Printf("Removed event %d from the schedule", input.EventID)
	return nil
}
