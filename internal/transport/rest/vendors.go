package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/catalog"
)

type vendorService interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	GetVendor(ctx context.Context, id domain.ID) (domain.Vendor, error)
	CreateVendor(ctx context.Context, input catalog.VendorInput) (domain.Vendor, error)
	UpdateVendor(ctx context.Context, input catalog.UpdateVendorInput) (domain.Vendor, error)
	DeleteVendor(ctx context.Context, id domain.ID) error
}

type vendorRestaurants interface {
	RestaurantsForVendor(ctx context.Context, vendorID domain.ID) ([]domain.Restaurant, error)
}

// VendorHandler serves /vendors.
type VendorHandler struct {
	svc         vendorService
	restaurants vendorRestaurants
	log         *slog.Logger
}

// NewVendorHandler creates a VendorHandler.
func NewVendorHandler(svc vendorService, restaurants vendorRestaurants, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{svc: svc, restaurants: restaurants, log: logger.With("handler", "vendors")}
}

type vendorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type updateVendorRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

// List handles GET /vendors.
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.svc.ListVendors(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendors)
}

// Get handles GET /vendors/{id}.
func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVendor(r.Context(), pathID(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Create handles POST /vendors.
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.svc.CreateVendor(r.Context(), catalog.VendorInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// Update handles PUT /vendors/{id}. Omitted fields keep their values.
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateVendorRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.svc.UpdateVendor(r.Context(), catalog.UpdateVendorInput{
		ID:          pathID(r),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /vendors/{id}.
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVendor(r.Context(), pathID(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restaurants handles GET /vendors/{id}/restaurants.
func (h *VendorHandler) Restaurants(w http.ResponseWriter, r *http.Request) {
	rs, err := h.restaurants.RestaurantsForVendor(r.Context(), pathID(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}
