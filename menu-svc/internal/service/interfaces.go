package service

import "tablebook/menu-svc/internal/domain"

type MenuServiceInterface interface {
	List(restaurantID, query, category string) ([]domain.MenuItem, error)
	Get(restaurantID string, itemID int) (*domain.MenuItem, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(restaurantID string, itemID int) error
	ToggleAvailability(restaurantID string, itemID int) (*domain.MenuItem, error)
}

type MenuRepository interface {
	ListItems(restaurantID string) ([]domain.MenuItem, error)
	GetItem(restaurantID string, itemID int) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(restaurantID string, itemID int) (int64, error)
	SetAvailability(restaurantID string, itemID int, available bool) error
}

var _ MenuServiceInterface = (*MenuService)(nil)
