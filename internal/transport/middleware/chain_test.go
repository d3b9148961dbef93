package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tag(order *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vendors", nil))
	return rec
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(order *[]string) Middleware
		want  []string
	}{
		{
			name: "first is outermost",
			build: func(o *[]string) Middleware {
				return Chain(tag(o, "requestID"), tag(o, "logger"))
			},
			want: []string{"requestID>", "logger>", "handler", "<logger", "<requestID"},
		},
		{
			name: "nil entries skipped",
			build: func(o *[]string) Middleware {
				return Chain(tag(o, "cors"), nil, tag(o, "metrics"))
			},
			want: []string{"cors>", "metrics>", "handler", "<metrics", "<cors"},
		},
		{
			name: "When false drops the stage",
			build: func(o *[]string) Middleware {
				return Chain(When(false, tag(o, "auth")), tag(o, "metrics"))
			},
			want: []string{"metrics>", "handler", "<metrics"},
		},
		{
			name: "When true keeps the stage",
			build: func(o *[]string) Middleware {
				return Chain(When(true, tag(o, "auth")))
			},
			want: []string{"auth>", "handler", "<auth"},
		},
		{
			name:  "empty chain is identity",
			build: func(*[]string) Middleware { return Chain() },
			want:  []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var order []string
			h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusOK)
			})

			rec := serve(tt.build(&order)(h))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, order)
		})
	}
}
