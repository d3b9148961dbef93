package rest

import "net/http"

// Handlers groups every REST handler for route registration.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Vendors     *VendorHandler
	Restaurants *RestaurantHandler
	Menu        *MenuHandler
	Predefined  *PredefinedHandler
	Views       *ViewsHandler
}

// PublicPaths are served without a token when auth is enabled.
var PublicPaths = []string{"/auth/login", "/live", "/ready", "/health", "/metrics"}

// Register mounts the API on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /settings/credentials", h.Auth.Settings)
	mux.HandleFunc("PUT /settings/credentials", h.Auth.UpdateSettings)
	mux.HandleFunc("GET /credentials", h.Auth.ListCredentials)
	mux.HandleFunc("POST /credentials", h.Auth.CreateCredential)
	mux.HandleFunc("DELETE /credentials/{id}", h.Auth.DeleteCredential)

	mux.HandleFunc("GET /vendors", h.Vendors.List)
	mux.HandleFunc("POST /vendors", h.Vendors.Create)
	mux.HandleFunc("GET /vendors/{id}", h.Vendors.Get)
	mux.HandleFunc("PUT /vendors/{id}", h.Vendors.Update)
	mux.HandleFunc("DELETE /vendors/{id}", h.Vendors.Delete)
	mux.HandleFunc("GET /vendors/{id}/restaurants", h.Vendors.Restaurants)

	mux.HandleFunc("GET /restaurants", h.Restaurants.List)
	mux.HandleFunc("POST /restaurants", h.Restaurants.Create)
	mux.HandleFunc("GET /restaurants/{id}", h.Restaurants.Get)
	mux.HandleFunc("PUT /restaurants/{id}", h.Restaurants.Update)
	mux.HandleFunc("DELETE /restaurants/{id}", h.Restaurants.Delete)

	mux.HandleFunc("GET /menuItems", h.Menu.List)
	mux.HandleFunc("POST /menuItems", h.Menu.Create)
	mux.HandleFunc("POST /menuItems/preset", h.Menu.Preset)
	mux.HandleFunc("GET /menuItems/{id}", h.Menu.Get)
	mux.HandleFunc("PUT /menuItems/{id}", h.Menu.Update)
	mux.HandleFunc("DELETE /menuItems/{id}", h.Menu.Delete)

	mux.HandleFunc("GET /preDefinedMenuItems", h.Predefined.List)
	mux.HandleFunc("POST /preDefinedMenuItems", h.Predefined.Create)
	mux.HandleFunc("GET /preDefinedMenuItems/{id}", h.Predefined.Get)
	mux.HandleFunc("PUT /preDefinedMenuItems/{id}", h.Predefined.Update)
	mux.HandleFunc("DELETE /preDefinedMenuItems/{id}", h.Predefined.Delete)

	mux.HandleFunc("GET /views/restaurants", h.Views.Restaurants)
	mux.HandleFunc("GET /views/vendors", h.Views.Vendors)
}
