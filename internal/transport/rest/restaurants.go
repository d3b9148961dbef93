package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/catalog"
)

type restaurantService interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id domain.ID) (domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, input catalog.RestaurantInput) (domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, input catalog.UpdateRestaurantInput) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id domain.ID) error
}

// RestaurantHandler serves /restaurants.
type RestaurantHandler struct {
	svc restaurantService
	log *slog.Logger
}

// NewRestaurantHandler creates a RestaurantHandler.
func NewRestaurantHandler(svc restaurantService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{svc: svc, log: logger.With("handler", "restaurants")}
}

type restaurantRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	ContactNumber string    `json:"contactNumber"`
	OpeningHour   string    `json:"openingHour"`
	ClosingHour   string    `json:"closingHour"`
	VendorID      domain.ID `json:"vendorId"`
}

type updateRestaurantRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	ContactNumber *string    `json:"contactNumber"`
	OpeningHour   *string    `json:"openingHour"`
	ClosingHour   *string    `json:"closingHour"`
	VendorID      *domain.ID `json:"vendorId"`
}

// List handles GET /restaurants.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	rs, err := h.svc.ListRestaurants(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

// Get handles GET /restaurants/{id}.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	rest, err := h.svc.GetRestaurant(r.Context(), pathID(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

// Create handles POST /restaurants.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rest, err := h.svc.CreateRestaurant(r.Context(), catalog.RestaurantInput{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		OpeningHour:   req.OpeningHour,
		ClosingHour:   req.ClosingHour,
		VendorID:      req.VendorID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

// Update handles PUT /restaurants/{id}.
func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRestaurantRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rest, err := h.svc.UpdateRestaurant(r.Context(), catalog.UpdateRestaurantInput{
		ID:            pathID(r),
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		OpeningHour:   req.OpeningHour,
		ClosingHour:   req.ClosingHour,
		VendorID:      req.VendorID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

// Delete handles DELETE /restaurants/{id}.
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRestaurant(r.Context(), pathID(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
