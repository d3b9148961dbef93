package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/catalog"
)

type menuService interface {
	ListMenuItems(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, id domain.ID) (domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, restaurantID domain.ID, input catalog.MenuItemInput) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID domain.ID, input catalog.UpdateMenuItemInput) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, id domain.ID) error
	AddPredefinedToMenu(ctx context.Context, restaurantID, predefinedID domain.ID) (domain.MenuItem, error)
}

// MenuHandler serves /menuItems. Every call is scoped to the restaurant in
// the restaurantId query parameter (or, on create, the body).
type MenuHandler struct {
	svc menuService
	log *slog.Logger
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(svc menuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, log: logger.With("handler", "menu")}
}

type menuItemRequest struct {
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	RestaurantID domain.ID `json:"restaurantId"`
}

type updateMenuItemRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

type presetRequest struct {
	RestaurantID         domain.ID `json:"restaurantId"`
	PredefinedMenuItemID domain.ID `json:"preDefinedMenuItemId"`
}

// List handles GET /menuItems?restaurantId=.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListMenuItems(r.Context(), restaurantParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /menuItems/{id}?restaurantId=.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetMenuItem(r.Context(), restaurantParam(r), pathID(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /menuItems?restaurantId=. The query parameter wins
// over restaurantId in the body.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	restaurantID := restaurantParam(r)
	if restaurantID == 0 {
		restaurantID = req.RestaurantID
	}

	item, err := h.svc.CreateMenuItem(r.Context(), restaurantID, catalog.MenuItemInput{
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

// Preset handles POST /menuItems/preset.
func (h *MenuHandler) Preset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.AddPredefinedToMenu(r.Context(), req.RestaurantID, req.PredefinedMenuItemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /menuItems/{id}?restaurantId=.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMenuItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateMenuItem(r.Context(), restaurantParam(r), catalog.UpdateMenuItemInput{
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

// Delete handles DELETE /menuItems/{id}?restaurantId=.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMenuItem(r.Context(), restaurantParam(r), pathID(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
