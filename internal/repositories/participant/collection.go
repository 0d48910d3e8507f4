package participant

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/repositories/document"
)

// Config holds configuration for the participant repository
type Config struct {
	// Store persists the participant collection
	Store document.Store
}

// collectionRepository implements the Repository interface over a document collection
type collectionRepository struct {
	participants *document.Collection[models.Participant]
}

// NewCollection loads the participant collection and returns a repository over it
func NewCollection(ctx context.Context, cfg *Config) (*collectionRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	participants, err := document.OpenCollection[models.Participant](ctx, cfg.Store, CollectionName, nil)
	if err != nil {
		return nil, err
	}

	return &collectionRepository{participants: participants}, nil
}

// ListParticipants returns copies of every participant
func (r *collectionRepository) ListParticipants(ctx context.Context) ([]*models.Participant, error) {
	var out []*models.Participant
	r.participants.Read(func(items []models.Participant) {
		out = make([]*models.Participant, 0, len(items))
		for i := range items {
			out = append(out, items[i].Clone())
		}
	})
	return out, nil
}

// GetParticipant retrieves a copy of one participant
func (r *collectionRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var found *models.Participant
	r.participants.Read(func(items []models.Participant) {
		if i := indexOf(items, input.ParticipantID); i >= 0 {
			found = items[i].Clone()
		}
	})
	if found == nil {
		return nil, ErrParticipantNotFound
	}
	return found, nil
}

// CreateParticipant appends a participant with ID max+1, or 1 for an empty collection
func (r *collectionRepository) CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*models.Participant, error) {
	if input == nil || input.Participant == nil {
		return nil, errors.New("input and participant cannot be nil")
	}

	created := input.Participant.Clone()
	err := r.participants.Mutate(ctx, func(items []models.Participant) ([]models.Participant, error) {
		created.ID = nextID(items)
		return append(items, *created.Clone()), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SaveParticipants replaces each given participant, matched by ID. Nothing is
// written if any participant does not exist.
func (r *collectionRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Participants) == 0 {
		return nil
	}

	return r.participants.Mutate(ctx, func(items []models.Participant) ([]models.Participant, error) {
		for _, p := range input.Participants {
			if p == nil {
				return nil, errors.New("participant cannot be nil")
			}
			i := indexOf(items, p.ID)
			if i < 0 {
				return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, p.ID)
			}
			items[i] = *p.Clone()
		}
		return items, nil
	})
}

// DeleteParticipant removes a participant by ID
func (r *collectionRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*models.Participant, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var deleted *models.Participant
	err := r.participants.Mutate(ctx, func(items []models.Participant) ([]models.Participant, error) {
		i := indexOf(items, input.ParticipantID)
		if i < 0 {
			return nil, ErrParticipantNotFound
		}
		deleted = items[i].Clone()
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func indexOf(items []models.Participant, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func nextID(items []models.Participant) int {
	maxID := 0
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}
	return maxID + 1
}
