// Package listing builds the denormalized rows shown by the list screens.
// Every call reloads its collections; nothing is cached.
package listing

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

type vendorLoader interface {
	Load(ctx context.Context) ([]domain.Vendor, error)
}

type restaurantLoader interface {
	Load(ctx context.Context) ([]domain.Restaurant, error)
}

type menuLoader interface {
	Load(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error)
}

// Service joins vendors, restaurants and menus in application code.
type Service struct {
	vendors     vendorLoader
	restaurants restaurantLoader
	menus       menuLoader
	log         *slog.Logger
}

// NewService creates a new listing service.
func NewService(
	log *slog.Logger,
	vendors vendorLoader,
	restaurants restaurantLoader,
	menus menuLoader,
) *Service {
	return &Service{
		vendors:     vendors,
		restaurants: restaurants,
		menus:       menus,
		log:         log.With("service", "listing"),
	}
}
