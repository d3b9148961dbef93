package store

import (
	"log/slog"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// Stores bundles one store per entity kind over a shared kv.Store.
type Stores struct {
	Vendors             *Collection[domain.Vendor]
	Restaurants         *Collection[domain.Restaurant]
	MenuItems           *Partitioned[domain.MenuItem]
	PredefinedMenuItems *Collection[domain.PredefinedMenuItem]
	LoginCredentials    *Collection[domain.LoginCredential]
}

// New wires the stores, each seeded with its default collection.
func New(s kv.Store, log *slog.Logger) *Stores {
	return &Stores{
		Vendors:             NewCollection(s, KeyVendors, domain.DefaultVendors, log),
		Restaurants:         NewCollection(s, KeyRestaurants, domain.DefaultRestaurants, log),
		MenuItems:           NewPartitioned(s, KeyMenuItems, domain.DefaultMenuItems, log),
		PredefinedMenuItems: NewCollection(s, KeyPredefinedMenuItems, domain.DefaultPredefinedMenuItems, log),
		LoginCredentials:    NewCollection(s, KeyLoginCredentials, domain.DefaultLoginCredentials, log),
	}
}
