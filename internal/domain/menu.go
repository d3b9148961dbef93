package domain

// MenuItem is one dish on a restaurant's menu. Menu items are stored grouped
// by restaurant; RestaurantID is informational and set when an item is copied
// from the predefined catalog.
type MenuItem struct {
	ID           ID      `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	RestaurantID ID      `json:"restaurantId,omitempty"`
}

func (m MenuItem) EntityID() ID { return m.ID }

func (m MenuItem) WithID(id ID) MenuItem {
	m.ID = id
	return m
}

// MenuItemPatch carries the menu item fields to change. nil means keep.
type MenuItemPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// Apply implements Patch.
func (p MenuItemPatch) Apply(m MenuItem) MenuItem {
	setIfPresent(&m.Name, p.Name)
	setIfPresent(&m.Price, p.Price)
	setIfPresent(&m.Category, p.Category)
	return m
}

// PredefinedMenuItem is a catalog dish that can be copied onto any menu.
type PredefinedMenuItem struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (p PredefinedMenuItem) EntityID() ID { return p.ID }

func (p PredefinedMenuItem) WithID(id ID) PredefinedMenuItem {
	p.ID = id
	return p
}

// ToMenuItem copies the catalog dish for the given restaurant. The copy has
// no id; the menu store assigns one.
func (p PredefinedMenuItem) ToMenuItem(restaurantID ID) MenuItem {
	return MenuItem{
		Name:         p.Name,
		Price:        p.Price,
		Category:     p.Category,
		RestaurantID: restaurantID,
	}
}

// PredefinedMenuItemPatch carries the catalog fields to change. nil means keep.
type PredefinedMenuItemPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// Apply implements Patch.
func (p PredefinedMenuItemPatch) Apply(m PredefinedMenuItem) PredefinedMenuItem {
	setIfPresent(&m.Name, p.Name)
	setIfPresent(&m.Price, p.Price)
	setIfPresent(&m.Category, p.Category)
	return m
}
