package document

import "context"

// Store persists whole named collections. Every write replaces the full
// collection; there are no partial updates.
type Store interface {
	// Load decodes the named collection into input.Target. When the collection
	// has never been written, input.Default is persisted and decoded instead.
	Load(ctx context.Context, input *LoadInput) error

	// Save overwrites the named collection with input.Data
	Save(ctx context.Context, input *SaveInput) error
}
