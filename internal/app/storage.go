package app

import (
	"context"
	"fmt"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/bolt"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/mongo"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/postgres"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/sqlite"
	"github.com/heartmarshall/restaurant-admin/internal/config"
)

// OpenStorage opens the key-value backend selected by cfg.Storage.Driver.
// The postgres backend runs its migrations before returning.
func OpenStorage(ctx context.Context, cfg *config.Config) (kv.Backend, error) {
	ns := cfg.Storage.Namespace

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), nil

	case config.DriverBolt:
		return bolt.Open(cfg.Storage.Path, ns)

	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.Storage.Path, ns)

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return postgres.NewStore(pool, ns), nil

	case config.DriverMongo:
		return mongo.Connect(ctx, cfg.Mongo, ns)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
