package domain

// The default collections below are served until the first write to the
// corresponding key. Each call returns a fresh copy.

// DefaultVendors returns the seed vendor collection.
func DefaultVendors() []Vendor {
	return []Vendor{
		{ID: 1, Name: "Vendor 1", Email: "vendor1@example.com", PhoneNumber: "1234567890"},
		{ID: 2, Name: "Vendor 2", Email: "vendor2@example.com", PhoneNumber: "9876543210"},
		{ID: 3, Name: "Vendor 3", Email: "vendor3@example.com", PhoneNumber: "5551234567"},
	}
}

// DefaultRestaurants returns the seed restaurant collection.
func DefaultRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:            1,
			Name:          "Restaurant 1",
			Description:   "Description of Restaurant 1",
			Location:      "Location 1",
			ContactNumber: "1234567890",
			OpeningHour:   "09",
			ClosingHour:   "00",
			VendorID:      1,
		},
		{
			ID:            2,
			Name:          "Restaurant 2",
			Description:   "Description of Restaurant 2",
			Location:      "Location 2",
			ContactNumber: "9876543210",
			OpeningHour:   "06",
			ClosingHour:   "22",
			VendorID:      2,
		},
	}
}

// DefaultMenuItems returns the seed menus keyed by restaurant id.
func DefaultMenuItems() map[ID][]MenuItem {
	return map[ID][]MenuItem{
		1: {
			{ID: 1, Name: "Burger", Price: 10.99, Category: "Fast Food"},
			{ID: 2, Name: "Pizza", Price: 12.99, Category: "Italian"},
		},
		2: {
			{ID: 3, Name: "Sushi", Price: 15.99, Category: "Japanese"},
			{ID: 4, Name: "Salad", Price: 8.99, Category: "Healthy"},
		},
	}
}

// DefaultPredefinedMenuItems returns the seed dish catalog.
func DefaultPredefinedMenuItems() []PredefinedMenuItem {
	return []PredefinedMenuItem{
		{ID: 101, Name: "Vada Pav", Price: 20, Category: "Fast Food"},
		{ID: 102, Name: "Pizza", Price: 500, Category: "Italian"},
		{ID: 103, Name: "Soda", Price: 45, Category: "Beverage"},
		{ID: 104, Name: "Salad", Price: 99, Category: "Healthy"},
		{ID: 105, Name: "Shawarma", Price: 199, Category: "Grill"},
	}
}

// DefaultLoginCredentials returns the seed admin account.
func DefaultLoginCredentials() []LoginCredential {
	return []LoginCredential{
		{ID: 1, Name: "Admin", Email: "admin@example.com", Password: "Admin@123"},
	}
}
