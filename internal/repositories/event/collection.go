package event

import (
	"context"
	"errors"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
)

// Config holds configuration for the event repository
type Config struct {
	// Store persists the event schedule
	Store document.Store
}

type collectionRepository struct {
	events *document.Collection[models.Event]
}

// NewCollection loads the event schedule and returns a repository over it
func NewCollection(ctx context.Context, cfg *Config) (*collectionRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	events, err := document.OpenCollection[models.Event](ctx, cfg.Store, CollectionName, nil)
	if err != nil {
		return nil, err
	}
	return &collectionRepository{events: events}, nil
}

func (r *collectionRepository) ListEvents(ctx context.Context) ([]*models.Event, error) {
	var out []*models.Event
	r.events.Read(func(items []models.Event) {
		out = make([]*models.Event, 0, len(items))
		for i := range items {
			e := items[i]
			out = append(out, &e)
		}
	})
	return out, nil
}

func (r *collectionRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var found *models.Event
	r.events.Read(func(items []models.Event) {
		if i := indexOf(items, input.EventID); i >= 0 {
			e := items[i]
			found = &e
		}
	})
	if found == nil {
		return nil, ErrEventNotFound
	}
	return found, nil
}

func (r *collectionRepository) CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("input and event cannot be nil")
	}

	created := *input.Event
	err := r.events.Mutate(ctx, func(items []models.Event) ([]models.Event, error) {
		maxID := 0
		for i := range items {
			if items[i].ID > maxID {
				maxID = items[i].ID
			}
		}
		created.ID = maxID + 1
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *collectionRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	return r.events.Mutate(ctx, func(items []models.Event) ([]models.Event, error) {
		i := indexOf(items, input.Event.ID)
		if i < 0 {
			return nil, ErrEventNotFound
		}
		items[i] = *input.Event
		return items, nil
	})
}

func (r *collectionRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.events.Mutate(ctx, func(items []models.Event) ([]models.Event, error) {
		i := indexOf(items, input.EventID)
		if i < 0 {
			return nil, ErrEventNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

func indexOf(items []models.Event, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
