// Package kvtest holds the behaviour every kv.Store implementation must share.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
)

// Run exercises a store. newStore must return an empty store on every call.
func Run(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()

	t.Run("absent key", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(context.Background(), "vendors")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "restaurants", `[{"id":1,"name":"Restaurant 1"}]`))

		v, ok, err := s.Get(ctx, "restaurants")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1,"name":"Restaurant 1"}]`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "menuItems", `{"1":[]}`))
		require.NoError(t, s.Set(ctx, "menuItems", `{}`))

		v, ok, err := s.Get(ctx, "menuItems")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{}`, v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "vendors", "a"))
		require.NoError(t, s.Set(ctx, "restaurants", "b"))

		v, _, err := s.Get(ctx, "vendors")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
		v, _, err = s.Get(ctx, "restaurants")
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})
}
