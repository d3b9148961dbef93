package listing

import (
	"context"
	"fmt"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// RestaurantsWithVendorEmail returns every restaurant with its vendor's email
// attached, or domain.VendorEmailPlaceholder when the vendor is gone.
func (s *Service) RestaurantsWithVendorEmail(ctx context.Context) ([]domain.RestaurantWithVendorEmail, error) {
	restaurants, err := s.restaurants.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}

	emails := make(map[domain.ID]string, len(vendors))
	for _, v := range vendors {
		if _, seen := emails[v.ID]; !seen {
			emails[v.ID] = v.Email
		}
	}

	rows := make([]domain.RestaurantWithVendorEmail, 0, len(restaurants))
	for _, r := range restaurants {
		email, ok := emails[r.VendorID]
		if !ok {
			email = domain.VendorEmailPlaceholder
		}
		rows = append(rows, domain.RestaurantWithVendorEmail{Restaurant: r, VendorEmail: email})
	}
	return rows, nil
}

// VendorsWithRestaurantCount returns every vendor with the number of
// restaurants referencing it.
func (s *Service) VendorsWithRestaurantCount(ctx context.Context) ([]domain.VendorWithRestaurantCount, error) {
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	restaurants, err := s.restaurants.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}

	counts := make(map[domain.ID]int, len(vendors))
	for _, r := range restaurants {
		counts[r.VendorID]++
	}

	rows := make([]domain.VendorWithRestaurantCount, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, domain.VendorWithRestaurantCount{Vendor: v, RestaurantCount: counts[v.ID]})
	}
	return rows, nil
}

// MenuItemsForRestaurant returns the restaurant's menu, empty when it has none.
func (s *Service) MenuItemsForRestaurant(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	items, err := s.menus.Load(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load menu %s: %w", restaurantID, err)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

// RestaurantsForVendor returns the restaurants whose vendorId is vendorID.
func (s *Service) RestaurantsForVendor(ctx context.Context, vendorID domain.ID) ([]domain.Restaurant, error) {
	restaurants, err := s.restaurants.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}

	out := make([]domain.Restaurant, 0)
	for _, r := range restaurants {
		if r.VendorID == vendorID {
			out = append(out, r)
		}
	}
	return out, nil
}
