package listing

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

func vendorsReturning(vs []domain.Vendor) *vendorLoaderMock {
	return &vendorLoaderMock{LoadFunc: func(context.Context) ([]domain.Vendor, error) { return vs, nil }}
}

func restaurantsReturning(rs []domain.Restaurant) *restaurantLoaderMock {
	return &restaurantLoaderMock{LoadFunc: func(context.Context) ([]domain.Restaurant, error) { return rs, nil }}
}

func newTestService(v *vendorLoaderMock, r *restaurantLoaderMock, m *menuLoaderMock) *Service {
	if m == nil {
		m = &menuLoaderMock{}
	}
	return NewService(slog.Default(), v, r, m)
}

// ---------------------------------------------------------------------------
// RestaurantsWithVendorEmail
// ---------------------------------------------------------------------------

func TestRestaurantsWithVendorEmail_AttachesEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning(domain.DefaultVendors()),
		restaurantsReturning(domain.DefaultRestaurants()),
		nil,
	)

	rows, err := svc.RestaurantsWithVendorEmail(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "vendor1@example.com", rows[0].VendorEmail)
	assert.Equal(t, "vendor2@example.com", rows[1].VendorEmail)
	assert.Equal(t, "Restaurant 1", rows[0].Name)
}

func TestRestaurantsWithVendorEmail_MissingVendor(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning([]domain.Vendor{{ID: 1, Email: "v1@example.com"}}),
		restaurantsReturning([]domain.Restaurant{{ID: 1, VendorID: 1}, {ID: 2, VendorID: 7}}),
		nil,
	)

	rows, err := svc.RestaurantsWithVendorEmail(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "v1@example.com", rows[0].VendorEmail)
	assert.Equal(t, domain.VendorEmailPlaceholder, rows[1].VendorEmail)
}

func TestRestaurantsWithVendorEmail_EmptyVendors(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning(nil),
		restaurantsReturning(domain.DefaultRestaurants()),
		nil,
	)

	rows, err := svc.RestaurantsWithVendorEmail(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		assert.Equal(t, "N/A", r.VendorEmail)
	}
}

func TestRestaurantsWithVendorEmail_LoadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	svc := newTestService(
		vendorsReturning(nil),
		&restaurantLoaderMock{LoadFunc: func(context.Context) ([]domain.Restaurant, error) { return nil, boom }},
		nil,
	)

	_, err := svc.RestaurantsWithVendorEmail(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ---------------------------------------------------------------------------
// VendorsWithRestaurantCount
// ---------------------------------------------------------------------------

func TestVendorsWithRestaurantCount(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning([]domain.Vendor{{ID: 1}, {ID: 2}}),
		restaurantsReturning([]domain.Restaurant{{ID: 1, VendorID: 1}, {ID: 2, VendorID: 1}}),
		nil,
	)

	rows, err := svc.VendorsWithRestaurantCount(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].RestaurantCount)
	assert.Equal(t, 0, rows[1].RestaurantCount)
}

func TestVendorsWithRestaurantCount_RecomputedEveryCall(t *testing.T) {
	t.Parallel()

	vendors := vendorsReturning(domain.DefaultVendors())
	restaurants := restaurantsReturning(domain.DefaultRestaurants())
	svc := newTestService(vendors, restaurants, nil)

	for range 3 {
		_, err := svc.VendorsWithRestaurantCount(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, vendors.LoadCalls(), 3)
	assert.Len(t, restaurants.LoadCalls(), 3)
}

// ---------------------------------------------------------------------------
// MenuItemsForRestaurant / RestaurantsForVendor
// ---------------------------------------------------------------------------

func TestMenuItemsForRestaurant(t *testing.T) {
	t.Parallel()

	menus := &menuLoaderMock{LoadFunc: func(_ context.Context, id domain.ID) ([]domain.MenuItem, error) {
		return domain.DefaultMenuItems()[id], nil
	}}
	svc := newTestService(vendorsReturning(nil), restaurantsReturning(nil), menus)

	items, err := svc.MenuItemsForRestaurant(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.MenuItemsForRestaurant(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	calls := menus.LoadCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, domain.ID(2), calls[0].RestaurantID)
}

func TestRestaurantsForVendor(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning(nil),
		restaurantsReturning([]domain.Restaurant{{ID: 1, VendorID: 1}, {ID: 2, VendorID: 2}, {ID: 3, VendorID: 1}}),
		nil,
	)

	got, err := svc.RestaurantsForVendor(context.Background(), domain.ParseID("1"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ID(1), got[0].ID)
	assert.Equal(t, domain.ID(3), got[1].ID)

	got, err = svc.RestaurantsForVendor(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearchRestaurants(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning(domain.DefaultVendors()),
		restaurantsReturning(domain.DefaultRestaurants()),
		nil,
	)

	tests := []struct {
		query string
		want  []domain.ID
	}{
		{query: "", want: []domain.ID{1, 2}},
		{query: "restaurant 2", want: []domain.ID{2}},
		{query: "LOCATION 1", want: []domain.ID{1}},
		{query: "vendor2@", want: []domain.ID{2}},
		{query: "nothing matches", want: []domain.ID{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rows, err := svc.SearchRestaurants(context.Background(), tt.query)
			require.NoError(t, err)

			got := make([]domain.ID, 0, len(rows))
			for _, r := range rows {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchVendors(t *testing.T) {
	t.Parallel()

	svc := newTestService(
		vendorsReturning(domain.DefaultVendors()),
		restaurantsReturning(domain.DefaultRestaurants()),
		nil,
	)

	rows, err := svc.SearchVendors(context.Background(), "vendor3")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Vendor 3", rows[0].Name)
	assert.Equal(t, 0, rows[0].RestaurantCount)

	rows, err = svc.SearchVendors(context.Background(), "EXAMPLE.COM")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
