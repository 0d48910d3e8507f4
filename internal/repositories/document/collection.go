package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
)

// Collection is the process's working copy of one persisted collection. It is
// loaded once and every mutation rewrites the whole collection through the
// store. Mutations are serialized, which closes the lost-update race of
// concurrent full-document rewrites within one process.
type Collection[T any] struct {
	mu    sync.Mutex
	store Store
	name  string
	items []T
}

// OpenCollection loads the named collection, seeding defaults if it does not exist
func OpenCollection[T any](ctx context.Context, store Store, name string, defaults []T) (*Collection[T], error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if defaults == nil {
		defaults = []T{}
	}

	var items []T
	if err := store.Load(ctx, &LoadInput{
		Collection: name,
		Default:    defaults,
		Target:     &items,
	}); err != nil {
		return nil, errs.Storage(fmt.Sprintf("failed to load %s", name), err)
	}

	return &Collection[T]{
		store: store,
		name:  name,
		items: items,
	}, nil
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// Read calls fn with the current items while holding the collection lock.
// fn must not modify or retain items.
func (c *Collection[T]) Read(fn func(items []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.items)
}

// Mutate calls fn with a deep copy of the items and persists the slice it
// returns. If fn fails nothing is written; if persisting fails the working
// copy is left unchanged.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	working, err := c.copyItems()
	if err != nil {
		return err
	}

	updated, err := fn(working)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []T{}
	}

	if err := c.store.Save(ctx, &SaveInput{
		Collection: c.name,
		Data:       updated,
	}); err != nil {
		return errs.Storage(fmt.Sprintf("failed to save %s", c.name), err)
	}

	c.items = updated
	return nil
}

func (c *Collection[T]) copyItems() ([]T, error) {
	data, err := json.Marshal(c.items)
	if err != nil {
		return nil, errs.Storage(fmt.Sprintf("failed to copy %s", c.name), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errs.Storage(fmt.Sprintf("failed to copy %s", c.name), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
