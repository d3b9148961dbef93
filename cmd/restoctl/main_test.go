package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/app"
	"github.com/heartmarshall/restaurant-admin/internal/config"
)

func newServer(t *testing.T, authEnabled bool) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		Auth: config.AuthConfig{
			Enabled:          authEnabled,
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   time.Hour,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{AllowedOrigins: "*"},
	}
	router := app.NewRouter(cfg, kv.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		router.Stop()
	})
	return srv
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--api", srv.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVendors_ListAddDelete(t *testing.T) {
	srv := newServer(t, false)

	out, err := run(t, srv, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor1@example.com")
	assert.Contains(t, out, "EMAIL")

	out, err = run(t, srv, "vendors", "add", "--name", "Vendor 4", "--email", "v4@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 4`)

	out, err = run(t, srv, "vendors", "update", "4", "--phone", "5550000000")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor 4 updated")

	out, err = run(t, srv, "vendors", "get", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "5550000000")
	assert.Contains(t, out, "v4@example.com")

	_, err = run(t, srv, "vendors", "delete", "4")
	require.NoError(t, err)

	_, err = run(t, srv, "vendors", "get", "4")
	assert.EqualError(t, err, "vendor 4 not found")
}

func TestVendors_BadID(t *testing.T) {
	srv := newServer(t, false)

	_, err := run(t, srv, "vendors", "get", "abc")
	assert.EqualError(t, err, `invalid id "abc"`)
}

func TestRestaurants_ListByVendor(t *testing.T) {
	srv := newServer(t, false)

	out, err := run(t, srv, "restaurants", "list", "--vendor", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Restaurant 2")
	assert.NotContains(t, out, "Restaurant 1")
}

func TestMenu_AddAndList(t *testing.T) {
	srv := newServer(t, false)

	_, err := run(t, srv, "menu", "list")
	require.Error(t, err, "--restaurant is required")

	_, err = run(t, srv, "menu", "add", "-r", "1", "--name", "Fries", "--price", "3.5", "--category", "Sides")
	require.NoError(t, err)

	out, err := run(t, srv, "menu", "list", "-r", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Burger")
	assert.Contains(t, out, "Fries")
	assert.Contains(t, out, "3.50")
}

func TestViews_Restaurants(t *testing.T) {
	srv := newServer(t, false)

	out, err := run(t, srv, "views", "restaurants", "-q", "location 2")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor2@example.com")
	assert.NotContains(t, out, "vendor1@example.com")
}

func TestLogin_RequiredWhenAuthEnabled(t *testing.T) {
	srv := newServer(t, true)

	// Reads degrade to an empty list when unauthorized.
	out, err := run(t, srv, "vendors", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "vendor1@example.com")

	token, err := run(t, srv, "--email", "admin@example.com", "--password", "Admin@123", "login")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err = run(t, srv, "--token", token[:len(token)-1], "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "vendor1@example.com")

	_, err = run(t, srv, "--email", "admin@example.com", "--password", "wrong", "vendors", "list")
	assert.Error(t, err)
}
