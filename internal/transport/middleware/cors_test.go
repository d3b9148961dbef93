package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/restaurant-admin/internal/config"
)

func corsConfig(origins string, credentials bool) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: credentials,
		MaxAge:           600,
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := CORS(corsConfig("https://admin.example.com", true))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/menuItems/3?restaurantId=1", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization,Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Origins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allowed     string
		credentials bool
		origin      string
		wantOrigin  string
		wantCreds   string
	}{
		{name: "listed", allowed: "https://a.example.com, https://admin.example.com", credentials: true,
			origin: "https://admin.example.com", wantOrigin: "https://admin.example.com", wantCreds: "true"},
		{name: "case insensitive", allowed: "https://Admin.Example.com", credentials: true,
			origin: "https://admin.example.com", wantOrigin: "https://admin.example.com", wantCreds: "true"},
		{name: "not listed", allowed: "https://admin.example.com", credentials: true,
			origin: "https://evil.example.net"},
		{name: "wildcard echoes origin", allowed: "*",
			origin: "https://anything.test", wantOrigin: "https://anything.test"},
		{name: "no origin header", allowed: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			h := CORS(corsConfig(tt.allowed, tt.credentials))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/vendors", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.True(t, called, "non-preflight requests reach the handler")
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, rec.Header().Get("Access-Control-Allow-Credentials"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "Origin", rec.Header().Get("Vary"))
				assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}
