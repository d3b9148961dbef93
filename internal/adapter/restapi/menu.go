package restapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// MenuItems is the menu collection, partitioned by restaurant. Every request
// carries the restaurant id as the restaurantId query parameter.
type MenuItems struct {
	c *Client
}

// MenuItems returns the partitioned menu collection.
func (c *Client) MenuItems() *MenuItems {
	return &MenuItems{c: c}
}

func (m *MenuItems) request(ctx context.Context, restaurantID domain.ID) *resty.Request {
	return m.c.request(ctx).SetQueryParam("restaurantId", restaurantID.String())
}

func itemPath(id domain.ID) string {
	return PathMenuItems + "/" + id.String()
}

// Load returns the restaurant's menu, or an empty one when the request fails.
func (m *MenuItems) Load(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	resp, err := m.request(ctx, restaurantID).Get(PathMenuItems)
	if err := check(resp, err, http.MethodGet, PathMenuItems); err != nil {
		m.c.log.WarnContext(ctx, "load menu failed, returning empty menu",
			slog.String("restaurant_id", restaurantID.String()), slog.String("error", err.Error()))
		return []domain.MenuItem{}, nil
	}

	out, err := decode[[]domain.MenuItem](resp, http.MethodGet, PathMenuItems)
	if err != nil || out == nil {
		return []domain.MenuItem{}, nil
	}
	return out, nil
}

// Add creates item on the restaurant's menu.
func (m *MenuItems) Add(ctx context.Context, restaurantID domain.ID, item domain.MenuItem) (domain.MenuItem, error) {
	item.RestaurantID = restaurantID
	resp, err := m.request(ctx, restaurantID).SetBody(item).Post(PathMenuItems)
	if err := check(resp, err, http.MethodPost, PathMenuItems); err != nil {
		m.c.log.ErrorContext(ctx, "add menu item failed", slog.String("error", err.Error()))
		return domain.MenuItem{}, err
	}
	return decode[domain.MenuItem](resp, http.MethodPost, PathMenuItems)
}

// Update sends patch for item id on the restaurant's menu.
func (m *MenuItems) Update(ctx context.Context, restaurantID, id domain.ID, patch domain.Patch[domain.MenuItem]) (bool, error) {
	path := itemPath(id)
	resp, err := m.request(ctx, restaurantID).SetBody(patch).Put(path)
	if err := check(resp, err, http.MethodPut, path); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		m.c.log.ErrorContext(ctx, "update menu item failed", slog.String("path", path), slog.String("error", err.Error()))
		return false, err
	}
	return true, nil
}

// GetByID returns a menu item. Any failure reads as not-found.
func (m *MenuItems) GetByID(ctx context.Context, restaurantID, id domain.ID) (domain.MenuItem, bool, error) {
	path := itemPath(id)
	resp, err := m.request(ctx, restaurantID).Get(path)
	if err := check(resp, err, http.MethodGet, path); err != nil {
		return domain.MenuItem{}, false, nil
	}

	out, err := decode[domain.MenuItem](resp, http.MethodGet, path)
	if err != nil {
		return domain.MenuItem{}, false, nil
	}
	return out, true, nil
}

// DeleteByID deletes a menu item. Deleting an absent id is not an error.
func (m *MenuItems) DeleteByID(ctx context.Context, restaurantID, id domain.ID) error {
	path := itemPath(id)
	resp, err := m.request(ctx, restaurantID).Delete(path)
	if err := check(resp, err, http.MethodDelete, path); err != nil {
		if isNotFound(err) {
			return nil
		}
		m.c.log.ErrorContext(ctx, "delete menu item failed", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}
	return nil
}
