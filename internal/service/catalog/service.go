// Package catalog implements the vendor, restaurant and menu forms: input
// validation and CRUD over the entity stores.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// collection is the flat entity store contract.
type collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Add(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id domain.ID, patch domain.Patch[T]) (bool, error)
	GetByID(ctx context.Context, id domain.ID) (T, bool, error)
	DeleteByID(ctx context.Context, id domain.ID) error
}

// partitioned is the entity store contract for collections split by owner.
type partitioned[T any] interface {
	Load(ctx context.Context, owner domain.ID) ([]T, error)
	Add(ctx context.Context, owner domain.ID, rec T) (T, error)
	Update(ctx context.Context, owner, id domain.ID, patch domain.Patch[T]) (bool, error)
	GetByID(ctx context.Context, owner, id domain.ID) (T, bool, error)
	DeleteByID(ctx context.Context, owner, id domain.ID) error
}

// Service provides catalog management operations. Deletes never cascade: a
// deleted vendor's restaurants keep their vendorId, and a deleted
// restaurant's menu stays stored.
type Service struct {
	vendors     collection[domain.Vendor]
	restaurants collection[domain.Restaurant]
	menus       partitioned[domain.MenuItem]
	predefined  collection[domain.PredefinedMenuItem]
	log         *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	vendors collection[domain.Vendor],
	restaurants collection[domain.Restaurant],
	menus partitioned[domain.MenuItem],
	predefined collection[domain.PredefinedMenuItem],
) *Service {
	return &Service{
		vendors:     vendors,
		restaurants: restaurants,
		menus:       menus,
		predefined:  predefined,
		log:         log.With("service", "catalog"),
	}
}

// getOrNotFound converts the store's absent result into domain.ErrNotFound.
func getOrNotFound[T any](ctx context.Context, c collection[T], id domain.ID) (T, error) {
	rec, ok, err := c.GetByID(ctx, id)
	if err != nil {
		return rec, err
	}
	if !ok {
		return rec, domain.ErrNotFound
	}
	return rec, nil
}
