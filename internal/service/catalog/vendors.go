package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// ListVendors returns every vendor.
func (s *Service) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.vendors.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

// GetVendor returns the vendor or domain.ErrNotFound.
func (s *Service) GetVendor(ctx context.Context, id domain.ID) (domain.Vendor, error) {
	v, err := getOrNotFound(ctx, s.vendors, id)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("vendor %s: %w", id, err)
	}
	return v, nil
}

// CreateVendor validates input and stores a new vendor.
func (s *Service) CreateVendor(ctx context.Context, input VendorInput) (domain.Vendor, error) {
	if err := input.Validate(); err != nil {
		return domain.Vendor{}, err
	}

	v, err := s.vendors.Add(ctx, domain.Vendor{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("create vendor: %w", err)
	}

	s.log.InfoContext(ctx, "vendor created", slog.String("vendor_id", v.ID.String()))
	return v, nil
}

// UpdateVendor applies the provided fields. domain.ErrNotFound when the
// vendor does not exist.
func (s *Service) UpdateVendor(ctx context.Context, input UpdateVendorInput) (domain.Vendor, error) {
	if err := input.Validate(); err != nil {
		return domain.Vendor{}, err
	}

	ok, err := s.vendors.Update(ctx, input.ID, domain.VendorPatch{
		Name:        trimPtr(input.Name),
		Email:       trimPtr(input.Email),
		PhoneNumber: trimPtr(input.PhoneNumber),
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("update vendor %s: %w", input.ID, err)
	}
	if !ok {
		return domain.Vendor{}, fmt.Errorf("vendor %s: %w", input.ID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "vendor updated", slog.String("vendor_id", input.ID.String()))
	return s.GetVendor(ctx, input.ID)
}

// DeleteVendor removes the vendor. Its restaurants are left in place.
func (s *Service) DeleteVendor(ctx context.Context, id domain.ID) error {
	if err := s.vendors.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete vendor %s: %w", id, err)
	}
	s.log.InfoContext(ctx, "vendor deleted", slog.String("vendor_id", id.String()))
	return nil
}
