package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// ListMenuItems returns the restaurant's menu.
func (s *Service) ListMenuItems(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	items, err := s.menus.Load(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu %s: %w", restaurantID, err)
	}
	return items, nil
}

// GetMenuItem returns a menu item or domain.ErrNotFound.
func (s *Service) GetMenuItem(ctx context.Context, restaurantID, id domain.ID) (domain.MenuItem, error) {
	item, ok, err := s.menus.GetByID(ctx, restaurantID, id)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("get menu item %s/%s: %w", restaurantID, id, err)
	}
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("menu item %s/%s: %w", restaurantID, id, domain.ErrNotFound)
	}
	return item, nil
}

// CreateMenuItem validates input and adds it to the restaurant's menu.
func (s *Service) CreateMenuItem(ctx context.Context, restaurantID domain.ID, input MenuItemInput) (domain.MenuItem, error) {
	if err := input.Validate(); err != nil {
		return domain.MenuItem{}, err
	}
	if restaurantID == 0 {
		return domain.MenuItem{}, domain.NewValidationError("restaurantId", "required")
	}

	return s.addMenuItem(ctx, restaurantID, domain.MenuItem{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
	})
}

// AddPredefinedToMenu copies a predefined catalog dish onto the restaurant's
// menu under a fresh menu id.
func (s *Service) AddPredefinedToMenu(ctx context.Context, restaurantID, predefinedID domain.ID) (domain.MenuItem, error) {
	if restaurantID == 0 {
		return domain.MenuItem{}, domain.NewValidationError("restaurantId", "required")
	}

	p, err := s.GetPredefinedMenuItem(ctx, predefinedID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return s.addMenuItem(ctx, restaurantID, p.ToMenuItem(restaurantID))
}

func (s *Service) addMenuItem(ctx context.Context, restaurantID domain.ID, item domain.MenuItem) (domain.MenuItem, error) {
	item, err := s.menus.Add(ctx, restaurantID, item)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("add menu item to %s: %w", restaurantID, err)
	}

	s.log.InfoContext(ctx, "menu item created",
		slog.String("restaurant_id", restaurantID.String()),
		slog.String("menu_item_id", item.ID.String()),
	)
	return item, nil
}

// UpdateMenuItem applies the provided fields. domain.ErrNotFound when the
// item is not on the restaurant's menu.
func (s *Service) UpdateMenuItem(ctx context.Context, restaurantID domain.ID, input UpdateMenuItemInput) (domain.MenuItem, error) {
	if err := input.Validate(); err != nil {
		return domain.MenuItem{}, err
	}

	ok, err := s.menus.Update(ctx, restaurantID, input.ID, domain.MenuItemPatch{
		Name:     trimPtr(input.Name),
		Price:    input.Price,
		Category: trimPtr(input.Category),
	})
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("update menu item %s/%s: %w", restaurantID, input.ID, err)
	}
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("menu item %s/%s: %w", restaurantID, input.ID, domain.ErrNotFound)
	}

	return s.GetMenuItem(ctx, restaurantID, input.ID)
}

// DeleteMenuItem removes an item from the restaurant's menu.
func (s *Service) DeleteMenuItem(ctx context.Context, restaurantID, id domain.ID) error {
	if err := s.menus.DeleteByID(ctx, restaurantID, id); err != nil {
		return fmt.Errorf("delete menu item %s/%s: %w", restaurantID, id, err)
	}
	return nil
}
