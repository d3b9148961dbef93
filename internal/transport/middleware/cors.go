package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/config"
)

// CORS answers preflight requests itself and tags allowed cross-origin
// responses. "*" in AllowedOrigins allows any origin; the request's origin is
// echoed back so credentials keep working.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		_, ok := origins[strings.ToLower(origin)]
		return allowAny || ok
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := r.Header.Get("Origin"); allowed(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func parseOrigins(raw string) (allowAny bool, set map[string]struct{}) {
	set = make(map[string]struct{})
	for _, o := range config.SplitList(raw) {
		if o == "*" {
			allowAny = true
			continue
		}
		set[strings.ToLower(o)] = struct{}{}
	}
	return allowAny, set
}
