package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// ListPredefinedMenuItems returns the predefined dish catalog.
func (s *Service) ListPredefinedMenuItems(ctx context.Context) ([]domain.PredefinedMenuItem, error) {
	items, err := s.predefined.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predefined menu items: %w", err)
	}
	return items, nil
}

// GetPredefinedMenuItem returns a catalog dish or domain.ErrNotFound.
func (s *Service) GetPredefinedMenuItem(ctx context.Context, id domain.ID) (domain.PredefinedMenuItem, error) {
	p, err := getOrNotFound(ctx, s.predefined, id)
	if err != nil {
		return domain.PredefinedMenuItem{}, fmt.Errorf("predefined menu item %s: %w", id, err)
	}
	return p, nil
}

// CreatePredefinedMenuItem validates input and adds a catalog dish.
func (s *Service) CreatePredefinedMenuItem(ctx context.Context, input MenuItemInput) (domain.PredefinedMenuItem, error) {
	if err := input.Validate(); err != nil {
		return domain.PredefinedMenuItem{}, err
	}

	p, err := s.predefined.Add(ctx, domain.PredefinedMenuItem{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
	})
	if err != nil {
		return domain.PredefinedMenuItem{}, fmt.Errorf("create predefined menu item: %w", err)
	}
	return p, nil
}

// UpdatePredefinedMenuItem applies the provided fields.
func (s *Service) UpdatePredefinedMenuItem(ctx context.Context, input UpdateMenuItemInput) (domain.PredefinedMenuItem, error) {
	if err := input.Validate(); err != nil {
		return domain.PredefinedMenuItem{}, err
	}

	ok, err := s.predefined.Update(ctx, input.ID, domain.PredefinedMenuItemPatch{
		Name:     trimPtr(input.Name),
		Price:    input.Price,
		Category: trimPtr(input.Category),
	})
	if err != nil {
		return domain.PredefinedMenuItem{}, fmt.Errorf("update predefined menu item %s: %w", input.ID, err)
	}
	if !ok {
		return domain.PredefinedMenuItem{}, fmt.Errorf("predefined menu item %s: %w", input.ID, domain.ErrNotFound)
	}
	return s.GetPredefinedMenuItem(ctx, input.ID)
}

// DeletePredefinedMenuItem removes a catalog dish. Copies already on menus
// are unaffected.
func (s *Service) DeletePredefinedMenuItem(ctx context.Context, id domain.ID) error {
	if err := s.predefined.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete predefined menu item %s: %w", id, err)
	}
	return nil
}
