package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

type fieldErrors []domain.FieldError

func (e *fieldErrors) add(field, message string) {
	*e = append(*e, domain.FieldError{Field: field, Message: message})
}

func (e fieldErrors) err() error {
	if len(e) > 0 {
		return &domain.ValidationError{Errors: e}
	}
	return nil
}

func (e *fieldErrors) name(field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		e.add(field, "required")
	} else if len(v) > maxNameLen {
		e.add(field, "max 100 characters")
	}
}

func (e *fieldErrors) email(field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		e.add(field, "required")
	} else if !emailRe.MatchString(v) {
		e.add(field, "invalid email")
	}
}

func (e *fieldErrors) phone(field, v string) {
	if !phoneRe.MatchString(strings.TrimSpace(v)) {
		e.add(field, "must be exactly 10 digits")
	}
}

func (e *fieldErrors) required(field, v string) {
	if strings.TrimSpace(v) == "" {
		e.add(field, "required")
	}
}

func (e *fieldErrors) hour(field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		e.add(field, "required")
		return
	}
	h, err := strconv.Atoi(v)
	if err != nil || h < 0 || h > 23 {
		e.add(field, "must be an hour between 00 and 23")
	}
}

func (e *fieldErrors) price(field string, v float64) {
	if v <= 0 {
		e.add(field, "must be positive")
	}
}

// ---------------------------------------------------------------------------
// Vendor
// ---------------------------------------------------------------------------

// VendorInput holds the vendor form fields.
type VendorInput struct {
	Name        string
	Email       string
	PhoneNumber string
}

// Validate checks all fields and collects all errors.
func (i VendorInput) Validate() error {
	var errs fieldErrors
	errs.name("name", i.Name)
	errs.email("email", i.Email)
	errs.phone("phoneNumber", i.PhoneNumber)
	return errs.err()
}

// UpdateVendorInput holds the vendor fields to change. nil = keep.
type UpdateVendorInput struct {
	ID          domain.ID
	Name        *string
	Email       *string
	PhoneNumber *string
}

// Validate checks all fields and collects all errors.
func (i UpdateVendorInput) Validate() error {
	var errs fieldErrors
	if i.ID == 0 {
		errs.add("id", "required")
	}
	if i.Name == nil && i.Email == nil && i.PhoneNumber == nil {
		errs.add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		errs.name("name", *i.Name)
	}
	if i.Email != nil {
		errs.email("email", *i.Email)
	}
	if i.PhoneNumber != nil {
		errs.phone("phoneNumber", *i.PhoneNumber)
	}
	return errs.err()
}

// ---------------------------------------------------------------------------
// Restaurant
// ---------------------------------------------------------------------------

// RestaurantInput holds the restaurant form fields.
type RestaurantInput struct {
	Name          string
	Description   string
	Location      string
	ContactNumber string
	OpeningHour   string
	ClosingHour   string
	VendorID      domain.ID
}

// Validate checks all fields and collects all errors.
func (i RestaurantInput) Validate() error {
	var errs fieldErrors
	errs.name("name", i.Name)
	errs.required("description", i.Description)
	if len(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs.add("description", "max 500 characters")
	}
	errs.required("location", i.Location)
	errs.phone("contactNumber", i.ContactNumber)
	errs.hour("openingHour", i.OpeningHour)
	errs.hour("closingHour", i.ClosingHour)
	if i.VendorID == 0 {
		errs.add("vendorId", "required")
	}
	return errs.err()
}

// UpdateRestaurantInput holds the restaurant fields to change. nil = keep.
type UpdateRestaurantInput struct {
	ID            domain.ID
	Name          *string
	Description   *string
	Location      *string
	ContactNumber *string
	OpeningHour   *string
	ClosingHour   *string
	VendorID      *domain.ID
}

func (i UpdateRestaurantInput) empty() bool {
	return i.Name == nil && i.Description == nil && i.Location == nil &&
		i.ContactNumber == nil && i.OpeningHour == nil && i.ClosingHour == nil && i.VendorID == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateRestaurantInput) Validate() error {
	var errs fieldErrors
	if i.ID == 0 {
		errs.add("id", "required")
	}
	if i.empty() {
		errs.add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		errs.name("name", *i.Name)
	}
	if i.Description != nil {
		errs.required("description", *i.Description)
		if len(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
			errs.add("description", "max 500 characters")
		}
	}
	if i.Location != nil {
		errs.required("location", *i.Location)
	}
	if i.ContactNumber != nil {
		errs.phone("contactNumber", *i.ContactNumber)
	}
	if i.OpeningHour != nil {
		errs.hour("openingHour", *i.OpeningHour)
	}
	if i.ClosingHour != nil {
		errs.hour("closingHour", *i.ClosingHour)
	}
	if i.VendorID != nil && *i.VendorID == 0 {
		errs.add("vendorId", "required")
	}
	return errs.err()
}

// ---------------------------------------------------------------------------
// Menu items (restaurant menus and the predefined catalog share the form)
// ---------------------------------------------------------------------------

// MenuItemInput holds the menu item form fields.
type MenuItemInput struct {
	Name     string
	Price    float64
	Category string
}

// Validate checks all fields and collects all errors.
func (i MenuItemInput) Validate() error {
	var errs fieldErrors
	errs.required("name", i.Name)
	errs.price("price", i.Price)
	errs.required("category", i.Category)
	return errs.err()
}

// UpdateMenuItemInput holds the menu item fields to change. nil = keep.
type UpdateMenuItemInput struct {
	ID       domain.ID
	Name     *string
	Price    *float64
	Category *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMenuItemInput) Validate() error {
	var errs fieldErrors
	if i.ID == 0 {
		errs.add("id", "required")
	}
	if i.Name == nil && i.Price == nil && i.Category == nil {
		errs.add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		errs.required("name", *i.Name)
	}
	if i.Price != nil {
		errs.price("price", *i.Price)
	}
	if i.Category != nil {
		errs.required("category", *i.Category)
	}
	return errs.err()
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
