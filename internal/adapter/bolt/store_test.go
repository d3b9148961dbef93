package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/bolt"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv/kvtest"
)

func openTemp(t *testing.T) *bolt.Store {
	t.Helper()

	s, err := bolt.Open(filepath.Join(t.TempDir(), "data", "admin.db"), "restaurant-admin")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Contract(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store { return openTemp(t) })
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "admin.db")

	s, err := bolt.Open(path, "ns")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "vendors", `[{"id":1}]`))
	require.NoError(t, s.Close())

	s, err = bolt.Open(path, "ns")
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "vendors")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "admin.db")

	s, err := bolt.Open(path, "a")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "vendors", "x"))
	require.NoError(t, s.Close())

	s, err = bolt.Open(path, "b")
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(ctx, "vendors")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Ping(t *testing.T) {
	s := openTemp(t)
	assert.NoError(t, s.Ping(context.Background()))
}
