package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/kv"
	"github.com/heartmarshall/restaurant-admin/internal/auth"
	"github.com/heartmarshall/restaurant-admin/internal/config"
	"github.com/heartmarshall/restaurant-admin/internal/service/account"
	"github.com/heartmarshall/restaurant-admin/internal/service/catalog"
	"github.com/heartmarshall/restaurant-admin/internal/service/listing"
	"github.com/heartmarshall/restaurant-admin/internal/store"
	"github.com/heartmarshall/restaurant-admin/internal/transport/middleware"
	"github.com/heartmarshall/restaurant-admin/internal/transport/rest"
)

// Router is the assembled HTTP handler plus the resources it owns.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Stop releases background resources held by the router.
func (r *Router) Stop() { r.limiter.Stop() }

// NewRouter wires stores, services, handlers and middleware over backend.
func NewRouter(cfg *config.Config, backend kv.Backend, logger *slog.Logger) *Router {
	// Stores.
	stores := store.New(backend, logger)

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	catalogService := catalog.NewService(logger, stores.Vendors, stores.Restaurants, stores.MenuItems, stores.PredefinedMenuItems)
	listingService := listing.NewService(logger, stores.Vendors, stores.Restaurants, stores.MenuItems)
	accountService := account.NewService(logger, stores.LoginCredentials, jwtMgr, cfg.Auth)

	// Handlers.
	handlers := rest.Handlers{
		Health:      rest.NewHealthHandler(backend, cfg.Storage.Driver, BuildVersion()),
		Auth:        rest.NewAuthHandler(accountService, cfg.Auth.AccessTokenTTL, logger),
		Vendors:     rest.NewVendorHandler(catalogService, listingService, logger),
		Restaurants: rest.NewRestaurantHandler(catalogService, logger),
		Menu:        rest.NewMenuHandler(catalogService, logger),
		Predefined:  rest.NewPredefinedHandler(catalogService, logger),
		Views:       rest.NewViewsHandler(listingService, logger),
	}

	// Mux. Login gets its own rate limit on top of the API chain.
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	api := http.NewServeMux()
	handlers.Register(api)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("POST /auth/login", limiter.Limit(cfg.RateLimit.LoginPerMinute)(api))
	mux.Handle("/", api)

	// Middleware chain. Metrics sits innermost so it sees the matched
	// route pattern.
	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.Auth.Enabled, middleware.Auth(jwtMgr, middleware.PublicPaths(rest.PublicPaths...))),
		middleware.Metrics,
	)

	return &Router{Handler: chain(mux), limiter: limiter}
}
