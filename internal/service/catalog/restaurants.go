package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// ListRestaurants returns every restaurant.
func (s *Service) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.restaurants.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurant returns the restaurant or domain.ErrNotFound.
func (s *Service) GetRestaurant(ctx context.Context, id domain.ID) (domain.Restaurant, error) {
	r, err := getOrNotFound(ctx, s.restaurants, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, err)
	}
	return r, nil
}

// CreateRestaurant validates input and stores a new restaurant. The vendor
// id is not checked against the vendor collection.
func (s *Service) CreateRestaurant(ctx context.Context, input RestaurantInput) (domain.Restaurant, error) {
	if err := input.Validate(); err != nil {
		return domain.Restaurant{}, err
	}

	r, err := s.restaurants.Add(ctx, domain.Restaurant{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		Location:      strings.TrimSpace(input.Location),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		OpeningHour:   strings.TrimSpace(input.OpeningHour),
		ClosingHour:   strings.TrimSpace(input.ClosingHour),
		VendorID:      input.VendorID,
	})
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.InfoContext(ctx, "restaurant created",
		slog.String("restaurant_id", r.ID.String()),
		slog.String("vendor_id", r.VendorID.String()),
	)
	return r, nil
}

// UpdateRestaurant applies the provided fields. domain.ErrNotFound when the
// restaurant does not exist.
func (s *Service) UpdateRestaurant(ctx context.Context, input UpdateRestaurantInput) (domain.Restaurant, error) {
	if err := input.Validate(); err != nil {
		return domain.Restaurant{}, err
	}

	ok, err := s.restaurants.Update(ctx, input.ID, domain.RestaurantPatch{
		Name:          trimPtr(input.Name),
		Description:   trimPtr(input.Description),
		Location:      trimPtr(input.Location),
		ContactNumber: trimPtr(input.ContactNumber),
		OpeningHour:   trimPtr(input.OpeningHour),
		ClosingHour:   trimPtr(input.ClosingHour),
		VendorID:      input.VendorID,
	})
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("update restaurant %s: %w", input.ID, err)
	}
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", input.ID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "restaurant updated", slog.String("restaurant_id", input.ID.String()))
	return s.GetRestaurant(ctx, input.ID)
}

// DeleteRestaurant removes the restaurant. Its menu stays stored.
func (s *Service) DeleteRestaurant(ctx context.Context, id domain.ID) error {
	if err := s.restaurants.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete restaurant %s: %w", id, err)
	}
	s.log.InfoContext(ctx, "restaurant deleted", slog.String("restaurant_id", id.String()))
	return nil
}
