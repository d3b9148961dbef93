package domain

// Vendor owns zero or more restaurants.
type Vendor struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (v Vendor) EntityID() ID { return v.ID }

func (v Vendor) WithID(id ID) Vendor {
	v.ID = id
	return v
}

// VendorPatch carries the vendor fields to change. nil means keep.
type VendorPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// Apply implements Patch.
func (p VendorPatch) Apply(v Vendor) Vendor {
	setIfPresent(&v.Name, p.Name)
	setIfPresent(&v.Email, p.Email)
	setIfPresent(&v.PhoneNumber, p.PhoneNumber)
	return v
}
