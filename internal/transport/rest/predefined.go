package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/catalog"
)

type predefinedService interface {
	ListPredefinedMenuItems(ctx context.Context) ([]domain.PredefinedMenuItem, error)
	GetPredefinedMenuItem(ctx context.Context, id domain.ID) (domain.PredefinedMenuItem, error)
	CreatePredefinedMenuItem(ctx context.Context, input catalog.MenuItemInput) (domain.PredefinedMenuItem, error)
	UpdatePredefinedMenuItem(ctx context.Context, input catalog.UpdateMenuItemInput) (domain.PredefinedMenuItem, error)
	DeletePredefinedMenuItem(ctx context.Context, id domain.ID) error
}

// PredefinedHandler serves /preDefinedMenuItems.
type PredefinedHandler struct {
	svc predefinedService
	log *slog.Logger
}

// NewPredefinedHandler creates a PredefinedHandler.
func NewPredefinedHandler(svc predefinedService, logger *slog.Logger) *PredefinedHandler {
	return &PredefinedHandler{svc: svc, log: logger.With("handler", "predefined")}
}

// List handles GET /preDefinedMenuItems.
func (h *PredefinedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPredefinedMenuItems(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /preDefinedMenuItems/{id}.
func (h *PredefinedHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetPredefinedMenuItem(r.Context(), pathID(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /preDefinedMenuItems.
func (h *PredefinedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.CreatePredefinedMenuItem(r.Context(), catalog.MenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /preDefinedMenuItems/{id}.
func (h *PredefinedHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMenuItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdatePredefinedMenuItem(r.Context(), catalog.UpdateMenuItemInput{
		ID:       pathID(r),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /preDefinedMenuItems/{id}.
func (h *PredefinedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePredefinedMenuItem(r.Context(), pathID(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
