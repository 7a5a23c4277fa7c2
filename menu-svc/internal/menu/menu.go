// Package menu has the owner-side rules for a restaurant's menu list.
package menu

import (
	"errors"
	"strings"

	"tablebook/menu-svc/internal/domain"
)

const (
	AllCategory     = "All"
	DefaultCategory = "Main Course"

	DefaultPreparationTime = 15
	DefaultRating          = 4.0
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrPriceRequired = errors.New("price must be greater than zero")
)

func Categories() []string {
	return []string{AllCategory, "Appetizers", DefaultCategory, "Desserts", "Beverages"}
}

// Filter keeps items whose name or description contains query, ignoring
// case, and whose category matches. An empty or All category matches every item.
func Filter(items []domain.MenuItem, query, category string) []domain.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.MenuItem
	for _, item := range items {
		if q != "" && !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		if category != "" && category != AllCategory && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

func Validate(item domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrNameRequired
	}
	if item.Price <= 0 {
		return ErrPriceRequired
	}
	return nil
}

// Normalize fills the defaults a new item gets when the owner leaves them blank.
func Normalize(item domain.MenuItem) domain.MenuItem {
	item.Name = strings.TrimSpace(item.Name)
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	if item.PreparationTime <= 0 {
		item.PreparationTime = DefaultPreparationTime
	}
	if item.Rating == 0 {
		item.Rating = DefaultRating
	}
	return item
}

// WithItemReplaced returns a copy of list with the entry sharing item's ID
// swapped for item.
func WithItemReplaced(list []domain.MenuItem, item domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == item.ID {
			out[i] = item
		}
	}
	return out
}
