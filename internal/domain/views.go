package domain

// VendorEmailPlaceholder is shown for a restaurant whose vendor cannot be found.
const VendorEmailPlaceholder = "N/A"

// RestaurantWithVendorEmail is a restaurant row joined with its vendor's email.
type RestaurantWithVendorEmail struct {
	Restaurant
	VendorEmail string `json:"vendorEmail"`
}

// VendorWithRestaurantCount is a vendor row with the number of restaurants
// referencing it.
type VendorWithRestaurantCount struct {
	Vendor
	RestaurantCount int `json:"restaurantCount"`
}
