package service

import (
	"database/sql"
	"errors"
	"fmt"

	"tablebook/menu-svc/internal/domain"
	"tablebook/menu-svc/internal/menu"
)

var ErrItemNotFound = errors.New("menu item not found")

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(restaurantID, query, category string) ([]domain.MenuItem, error) {
	items, err := s.repo.ListItems(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return menu.Filter(items, query, category), nil
}

func (s *MenuService) Get(restaurantID string, itemID int) (*domain.MenuItem, error) {
	item, err := s.repo.GetItem(restaurantID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// Create stores a new item. Ratings come from reviews, so a new item always
// starts at the default rating and is not marked popular.
func (s *MenuService) Create(item *domain.MenuItem) error {
	if err := menu.Validate(*item); err != nil {
		return err
	}
	item.Rating = 0
	item.Popular = false
	*item = menu.Normalize(*item)
	return s.repo.CreateItem(item)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if err := menu.Validate(*item); err != nil {
		return err
	}
	existing, err := s.Get(item.RestaurantID, item.ID)
	if err != nil {
		return err
	}
	item.Rating = existing.Rating
	item.Popular = existing.Popular
	item.CreatedAt = existing.CreatedAt
	*item = menu.Normalize(*item)
	return s.repo.UpdateItem(item)
}

func (s *MenuService) Delete(restaurantID string, itemID int) error {
	rows, err := s.repo.DeleteItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *MenuService) ToggleAvailability(restaurantID string, itemID int) (*domain.MenuItem, error) {
	item, err := s.Get(restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	item.Available = !item.Available
	if err := s.repo.SetAvailability(restaurantID, itemID, item.Available); err != nil {
		return nil, err
	}
	return item, nil
}
