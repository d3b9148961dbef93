package listing

import (
	"context"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// SearchRestaurants filters RestaurantsWithVendorEmail by a case-insensitive
// substring of name, description, location or vendor email. An empty query
// returns every row.
func (s *Service) SearchRestaurants(ctx context.Context, query string) ([]domain.RestaurantWithVendorEmail, error) {
	rows, err := s.RestaurantsWithVendorEmail(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RestaurantWithVendorEmail, 0, len(rows))
	for _, r := range rows {
		if domain.MatchesQuery(query, r.Name, r.Description, r.Location, r.VendorEmail) {
			out = append(out, r)
		}
	}
	return out, nil
}

// SearchVendors filters VendorsWithRestaurantCount by name or email.
func (s *Service) SearchVendors(ctx context.Context, query string) ([]domain.VendorWithRestaurantCount, error) {
	rows, err := s.VendorsWithRestaurantCount(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.VendorWithRestaurantCount, 0, len(rows))
	for _, v := range rows {
		if domain.MatchesQuery(query, v.Name, v.Email) {
			out = append(out, v)
		}
	}
	return out, nil
}
