package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestVendorPatch_PreservesAbsentFields(t *testing.T) {
	t.Parallel()

	v := Vendor{ID: 1, Name: "Vendor 1", Email: "v1@example.com", PhoneNumber: "1234567890"}
	got := VendorPatch{Email: ptr("new@example.com")}.Apply(v)

	assert.Equal(t, Vendor{ID: 1, Name: "Vendor 1", Email: "new@example.com", PhoneNumber: "1234567890"}, got)
}

func TestRestaurantPatch_VendorID(t *testing.T) {
	t.Parallel()

	r := DefaultRestaurants()[0]
	got := RestaurantPatch{VendorID: ptr(ID(3))}.Apply(r)

	assert.Equal(t, ID(3), got.VendorID)
	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, r.OpeningHour, got.OpeningHour)
}

func TestMenuItemPatch_EmptyPatchIsIdentity(t *testing.T) {
	t.Parallel()

	m := MenuItem{ID: 4, Name: "Salad", Price: 8.99, Category: "Healthy"}
	assert.Equal(t, m, MenuItemPatch{}.Apply(m))
}

func TestPredefinedMenuItem_ToMenuItem(t *testing.T) {
	t.Parallel()

	p := PredefinedMenuItem{ID: 101, Name: "Vada Pav", Price: 20, Category: "Fast Food"}
	got := p.ToMenuItem(2)

	assert.Equal(t, MenuItem{Name: "Vada Pav", Price: 20, Category: "Fast Food", RestaurantID: 2}, got)
}

func TestWithID_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	c := LoginCredential{ID: 1, Email: "admin@example.com"}
	moved := c.WithID(5)

	assert.Equal(t, ID(1), c.ID)
	assert.Equal(t, ID(5), moved.ID)
}

func TestDefaults_AreFreshCopies(t *testing.T) {
	t.Parallel()

	a := DefaultVendors()
	a[0].Name = "changed"
	assert.Equal(t, "Vendor 1", DefaultVendors()[0].Name)

	m := DefaultMenuItems()
	delete(m, 1)
	assert.Len(t, DefaultMenuItems()[1], 2)
}
