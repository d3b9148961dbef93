package restapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// Resource paths on the admin API.
const (
	PathVendors             = "/vendors"
	PathRestaurants         = "/restaurants"
	PathPredefinedMenuItems = "/preDefinedMenuItems"
	PathMenuItems           = "/menuItems"
)

// Resource is a flat collection served under path.
type Resource[T domain.Entity[T]] struct {
	c    *Client
	path string
}

// NewResource returns the collection served under path.
func NewResource[T domain.Entity[T]](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// Vendors returns the vendor collection.
func (c *Client) Vendors() *Resource[domain.Vendor] {
	return NewResource[domain.Vendor](c, PathVendors)
}

// Restaurants returns the restaurant collection.
func (c *Client) Restaurants() *Resource[domain.Restaurant] {
	return NewResource[domain.Restaurant](c, PathRestaurants)
}

// PredefinedMenuItems returns the predefined dish catalog.
func (c *Client) PredefinedMenuItems() *Resource[domain.PredefinedMenuItem] {
	return NewResource[domain.PredefinedMenuItem](c, PathPredefinedMenuItems)
}

func (r *Resource[T]) itemPath(id domain.ID) string {
	return r.path + "/" + id.String()
}

// Load returns the collection, or an empty one when the request fails.
func (r *Resource[T]) Load(ctx context.Context) ([]T, error) {
	resp, err := r.c.request(ctx).Get(r.path)
	if err := check(resp, err, http.MethodGet, r.path); err != nil {
		r.c.log.WarnContext(ctx, "load failed, returning empty collection",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return []T{}, nil
	}

	out, err := decode[[]T](resp, http.MethodGet, r.path)
	if err != nil || out == nil {
		return []T{}, nil
	}
	return out, nil
}

// Add creates rec and returns the record as stored by the server.
func (r *Resource[T]) Add(ctx context.Context, rec T) (T, error) {
	var zero T
	resp, err := r.c.request(ctx).SetBody(rec).Post(r.path)
	if err := check(resp, err, http.MethodPost, r.path); err != nil {
		r.c.log.ErrorContext(ctx, "add failed", slog.String("path", r.path), slog.String("error", err.Error()))
		return zero, err
	}
	return decode[T](resp, http.MethodPost, r.path)
}

// Update sends patch for id. It reports false when the server has no such
// record.
func (r *Resource[T]) Update(ctx context.Context, id domain.ID, patch domain.Patch[T]) (bool, error) {
	path := r.itemPath(id)
	resp, err := r.c.request(ctx).SetBody(patch).Put(path)
	if err := check(resp, err, http.MethodPut, path); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		r.c.log.ErrorContext(ctx, "update failed", slog.String("path", path), slog.String("error", err.Error()))
		return false, err
	}
	return true, nil
}

// GetByID returns the record with id. Any failure reads as not-found.
func (r *Resource[T]) GetByID(ctx context.Context, id domain.ID) (T, bool, error) {
	var zero T
	path := r.itemPath(id)
	resp, err := r.c.request(ctx).Get(path)
	if err := check(resp, err, http.MethodGet, path); err != nil {
		if !isNotFound(err) {
			r.c.log.WarnContext(ctx, "get failed, reporting not found",
				slog.String("path", path), slog.String("error", err.Error()))
		}
		return zero, false, nil
	}

	out, err := decode[T](resp, http.MethodGet, path)
	if err != nil {
		return zero, false, nil
	}
	return out, true, nil
}

// DeleteByID deletes id. Deleting an absent id is not an error.
func (r *Resource[T]) DeleteByID(ctx context.Context, id domain.ID) error {
	path := r.itemPath(id)
	resp, err := r.c.request(ctx).Delete(path)
	if err := check(resp, err, http.MethodDelete, path); err != nil {
		if isNotFound(err) {
			return nil
		}
		r.c.log.ErrorContext(ctx, "delete failed", slog.String("path", path), slog.String("error", err.Error()))
		return err
	}
	return nil
}
