package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

type listingService interface {
	SearchRestaurants(ctx context.Context, query string) ([]domain.RestaurantWithVendorEmail, error)
	SearchVendors(ctx context.Context, query string) ([]domain.VendorWithRestaurantCount, error)
}

// ViewsHandler serves the joined list screens.
type ViewsHandler struct {
	svc listingService
	log *slog.Logger
}

// NewViewsHandler creates a ViewsHandler.
func NewViewsHandler(svc listingService, logger *slog.Logger) *ViewsHandler {
	return &ViewsHandler{svc: svc, log: logger.With("handler", "views")}
}

// Restaurants handles GET /views/restaurants?q=.
func (h *ViewsHandler) Restaurants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SearchRestaurants(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Vendors handles GET /views/vendors?q=.
func (h *ViewsHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SearchVendors(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
