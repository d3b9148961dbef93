package domain

// Restaurant belongs to a vendor through VendorID. The reference is not
// enforced: a restaurant may point at a vendor that no longer exists.
type Restaurant struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
	OpeningHour   string `json:"openingHour"`
	ClosingHour   string `json:"closingHour"`
	VendorID      ID     `json:"vendorId"`
}

func (r Restaurant) EntityID() ID { return r.ID }

func (r Restaurant) WithID(id ID) Restaurant {
	r.ID = id
	return r
}

// RestaurantPatch carries the restaurant fields to change. nil means keep.
type RestaurantPatch struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	OpeningHour   *string `json:"openingHour,omitempty"`
	ClosingHour   *string `json:"closingHour,omitempty"`
	VendorID      *ID     `json:"vendorId,omitempty"`
}

// Apply implements Patch.
func (p RestaurantPatch) Apply(r Restaurant) Restaurant {
	setIfPresent(&r.Name, p.Name)
	setIfPresent(&r.Description, p.Description)
	setIfPresent(&r.Location, p.Location)
	setIfPresent(&r.ContactNumber, p.ContactNumber)
	setIfPresent(&r.OpeningHour, p.OpeningHour)
	setIfPresent(&r.ClosingHour, p.ClosingHour)
	setIfPresent(&r.VendorID, p.VendorID)
	return r
}
