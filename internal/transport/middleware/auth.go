package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.ID, error)
}

// Auth requires a valid bearer token on every request except those public
// reports as open. The credential id from the token is put on the context.
// A nil public protects every route.
func Auth(validator tokenValidator, public func(r *http.Request) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || (public != nil && public(r)) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			credentialID, err := validator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithCredentialID(r.Context(), credentialID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PublicPaths returns a matcher for Auth that opens the exact paths given.
func PublicPaths(paths ...string) func(r *http.Request) bool {
	open := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		open[p] = struct{}{}
	}
	return func(r *http.Request) bool {
		_, ok := open[r.URL.Path]
		return ok
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
