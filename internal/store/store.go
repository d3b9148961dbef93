// Package store implements the entity stores: load-modify-save CRUD over JSON
// arrays kept under fixed keys in a kv.Store.
//
// Records get ids of max(existing)+1 on Add. Update on a missing id and
// DeleteByID on a missing id are no-ops. Until the first mutation of a key
// the store serves the seed collection without writing it.
package store

import (
	"errors"
	"fmt"
)

// Keys under which each collection is persisted.
const (
	KeyVendors             = "vendors"
	KeyRestaurants         = "restaurants"
	KeyMenuItems           = "menuItems"
	KeyPredefinedMenuItems = "PreDefinedMenuItems"
	KeyLoginCredentials    = "loginCredentials"
)

// ErrCorrupt is returned when the persisted value under a key is not valid
// JSON of the expected shape.
var ErrCorrupt = errors.New("corrupt stored collection")

func corrupt(key string, err error) error {
	return fmt.Errorf("%s: %w: %v", key, ErrCorrupt, err)
}
