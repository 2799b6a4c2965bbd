package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

// collection is an in-memory entity slice mirrored into a single kvstore key.
// Every mutation re-serializes the whole collection synchronously under the
// lock; last write wins. Corrupt or missing stored data falls back to the
// seed value instead of failing startup.
type collection[T any] struct {
	store kvstore.Store
	key   string
	mu    sync.RWMutex
	items []T
}

func newCollection[T any](ctx context.Context, store kvstore.Store, key string, seed []T) (*collection[T], error) {
	c := &collection[T]{store: store, key: key}

	data, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		c.items = seed
		if err := c.persistLocked(ctx); err != nil {
			return nil, err
		}
		return c, nil
	case err != nil:
		return nil, err
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		log.Printf("Warning: corrupt data under %q, falling back to seed: %v", key, err)
		c.items = seed
		if err := c.persistLocked(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// snapshot returns a copy of the collection so callers can read without
// holding the lock.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// find returns a copy of the first item matching the predicate.
func (c *collection[T]) find(match func(T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if match(c.items[i]) {
			item := c.items[i]
			return &item, true
		}
	}
	return nil, false
}

// mutate applies fn to the collection and saves the result synchronously.
// fn receives a copy so a failed write leaves the held slice untouched; the
// in-memory slice is only swapped once the write succeeded.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	work := make([]T, len(c.items))
	copy(work, c.items)
	updated := fn(work)
	prev := c.items
	c.items = updated
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		return err
	}
	return nil
}

func (c *collection[T]) persistLocked(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, c.key, data)
}
