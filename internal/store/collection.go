package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// Collection is the store for one flat entity collection persisted as a JSON
// array under a single key.
type Collection[T domain.Entity[T]] struct {
	kv       kv.Store
	key      string
	defaults func() []T
	log      *slog.Logger

	// mu serializes load-modify-save within the process.
	mu sync.Mutex
}

// NewCollection creates a store for key. defaults may be nil, in which case
// an absent key reads as an empty collection.
func NewCollection[T domain.Entity[T]](s kv.Store, key string, defaults func() []T, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		kv:       s,
		key:      key,
		defaults: defaults,
		log:      log.With("store", key),
	}
}

// Key returns the key the collection is persisted under.
func (c *Collection[T]) Key() string { return c.key }

// Load returns the persisted collection, or the seed collection when nothing
// has been written yet. Load never writes.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	observe(c.key, "load")
	return c.load(ctx)
}

// Add stores rec with the next id and returns it as stored. Any id set on
// rec is ignored.
func (c *Collection[T]) Add(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	observe(c.key, "add")
	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	records, rec = appendNew(records, rec)
	if err := c.save(ctx, records); err != nil {
		return zero, err
	}

	c.log.DebugContext(ctx, "record added", slog.String("id", rec.EntityID().String()))
	return rec, nil
}

// Update lays patch over the record with the given id and persists the
// collection. It reports whether a record matched; when none did, nothing is
// written and the error is nil.
func (c *Collection[T]) Update(ctx context.Context, id domain.ID, patch domain.Patch[T]) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	observe(c.key, "update")
	records, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	records, ok := patched(records, id, patch)
	if !ok {
		return false, nil
	}
	if err := c.save(ctx, records); err != nil {
		return false, err
	}

	c.log.DebugContext(ctx, "record updated", slog.String("id", id.String()))
	return true, nil
}

// GetByID returns the record with the given id. ok is false when there is none.
func (c *Collection[T]) GetByID(ctx context.Context, id domain.ID) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	observe(c.key, "get")
	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}

	rec, ok := find(records, id)
	return rec, ok, nil
}

// DeleteByID removes the record with the given id. Deleting an absent id is a
// no-op.
func (c *Collection[T]) DeleteByID(ctx context.Context, id domain.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	observe(c.key, "delete")
	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	records, removed := without(records, id)
	if !removed {
		return nil
	}
	if err := c.save(ctx, records); err != nil {
		return err
	}

	c.log.DebugContext(ctx, "record deleted", slog.String("id", id.String()))
	return nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		if c.defaults == nil {
			return []T{}, nil
		}
		return c.defaults(), nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, corrupt(c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
