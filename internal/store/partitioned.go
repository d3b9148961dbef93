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

// Partitioned is the store for a collection split by owner id, persisted as
// one JSON object mapping owner id to that owner's array. Menu items are kept
// this way, partitioned by restaurant.
//
// A partition reads as the stored array when one was written, else the seed
// partition, else empty. A mutation writes only its own partition back; ids
// are max+1 within the partition.
type Partitioned[T domain.Entity[T]] struct {
	kv       kv.Store
	key      string
	defaults func() map[domain.ID][]T
	log      *slog.Logger

	mu sync.Mutex
}

// NewPartitioned creates a partitioned store for key. defaults may be nil.
func NewPartitioned[T domain.Entity[T]](s kv.Store, key string, defaults func() map[domain.ID][]T, log *slog.Logger) *Partitioned[T] {
	return &Partitioned[T]{
		kv:       s,
		key:      key,
		defaults: defaults,
		log:      log.With("store", key),
	}
}

// Key returns the key the partitions are persisted under.
func (p *Partitioned[T]) Key() string { return p.key }

// Load returns the partition owned by owner. It never writes.
func (p *Partitioned[T]) Load(ctx context.Context, owner domain.ID) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	observe(p.key, "load")
	_, records, err := p.load(ctx, owner)
	return records, err
}

// Add stores rec in owner's partition with the next id and returns it.
func (p *Partitioned[T]) Add(ctx context.Context, owner domain.ID, rec T) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	observe(p.key, "add")
	var zero T
	all, records, err := p.load(ctx, owner)
	if err != nil {
		return zero, err
	}

	records, rec = appendNew(records, rec)
	if err := p.save(ctx, all, owner, records); err != nil {
		return zero, err
	}

	p.log.DebugContext(ctx, "record added",
		slog.String("owner", owner.String()),
		slog.String("id", rec.EntityID().String()),
	)
	return rec, nil
}

// Update lays patch over the record with the given id in owner's partition.
// It reports whether a record matched; a miss writes nothing.
func (p *Partitioned[T]) Update(ctx context.Context, owner, id domain.ID, patch domain.Patch[T]) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	observe(p.key, "update")
	all, records, err := p.load(ctx, owner)
	if err != nil {
		return false, err
	}

	records, ok := patched(records, id, patch)
	if !ok {
		return false, nil
	}
	if err := p.save(ctx, all, owner, records); err != nil {
		return false, err
	}

	p.log.DebugContext(ctx, "record updated",
		slog.String("owner", owner.String()),
		slog.String("id", id.String()),
	)
	return true, nil
}

// GetByID returns the record with the given id in owner's partition.
func (p *Partitioned[T]) GetByID(ctx context.Context, owner, id domain.ID) (T, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	observe(p.key, "get")
	var zero T
	_, records, err := p.load(ctx, owner)
	if err != nil {
		return zero, false, err
	}

	rec, ok := find(records, id)
	return rec, ok, nil
}

// DeleteByID removes the record with the given id from owner's partition.
// Deleting an absent id is a no-op.
func (p *Partitioned[T]) DeleteByID(ctx context.Context, owner, id domain.ID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	observe(p.key, "delete")
	all, records, err := p.load(ctx, owner)
	if err != nil {
		return err
	}

	records, removed := without(records, id)
	if !removed {
		return nil
	}
	if err := p.save(ctx, all, owner, records); err != nil {
		return err
	}

	p.log.DebugContext(ctx, "record deleted",
		slog.String("owner", owner.String()),
		slog.String("id", id.String()),
	)
	return nil
}

// load returns the stored partitions (empty when the key is absent) and the
// effective partition for owner.
func (p *Partitioned[T]) load(ctx context.Context, owner domain.ID) (map[string][]T, []T, error) {
	raw, ok, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", p.key, err)
	}

	stored := make(map[string][]T)
	if ok {
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, nil, corrupt(p.key, err)
		}
		if stored == nil {
			stored = make(map[string][]T)
		}
	}

	for k, records := range stored {
		if domain.ParseID(k) == owner {
			if records == nil {
				records = []T{}
			}
			return stored, records, nil
		}
	}

	if p.defaults != nil {
		if records, ok := p.defaults()[owner]; ok {
			return stored, records, nil
		}
	}
	return stored, []T{}, nil
}

func (p *Partitioned[T]) save(ctx context.Context, stored map[string][]T, owner domain.ID, records []T) error {
	for k := range stored {
		if domain.ParseID(k) == owner {
			delete(stored, k)
		}
	}
	if records == nil {
		records = []T{}
	}
	stored[owner.String()] = records

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.key, err)
	}
	if err := p.kv.Set(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", p.key, err)
	}
	return nil
}
