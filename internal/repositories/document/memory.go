package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore keeps encoded collections in process memory
type memoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemory creates a store that lives only as long as the process
func NewMemory() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

// Load decodes the stored collection or seeds the default
func (s *memoryStore) Load(ctx context.Context, input *LoadInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.docs[input.Collection]
	if !ok {
		var err error
		data, err = encode(input.Default)
		if err != nil {
			return fmt.Errorf("failed to marshal default %s: %w", input.Collection, err)
		}
		s.docs[input.Collection] = data
	}
	if err := json.Unmarshal(data, input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", input.Collection, err)
	}
	return nil
}

// Save replaces the stored collection
func (s *memoryStore) Save(ctx context.Context, input *SaveInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	data, err := encode(input.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", input.Collection, err)
	}

	s.mu.Lock()
	s.docs[input.Collection] = data
	s.mu.Unlock()
	return nil
}
