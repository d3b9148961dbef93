//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv/kvtest"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/postgres"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/postgres/testhelper"
)

func TestStore_Contract(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	kvtest.Run(t, func(*testing.T) kv.Store {
		return postgres.NewStore(pool, testhelper.UniqueNamespace("contract"))
	})
}

func TestStore_ReadsSeededRow(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	ns := testhelper.UniqueNamespace("seeded")
	testhelper.SeedEntry(t, pool, ns, "restaurants", `[{"id":7}]`)

	v, ok, err := postgres.NewStore(pool, ns).Get(context.Background(), "restaurants")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":7}]`, v)
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	require.NoError(t, postgres.Migrate(context.Background(), pool))
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	assert.NoError(t, postgres.NewStore(pool, "ping").Ping(context.Background()))
}
