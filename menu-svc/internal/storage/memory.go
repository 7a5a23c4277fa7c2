package storage

import (
	"database/sql"
	"sync"
	"time"

	"tablebook/menu-svc/internal/domain"
	"tablebook/menu-svc/internal/menu"
)

// MemoryRepository keeps menus in process. It backs STORAGE=memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	items  []domain.MenuItem
}

func NewMemoryRepository(items []domain.MenuItem) *MemoryRepository {
	m := &MemoryRepository{items: items}
	for _, item := range items {
		if item.ID > m.nextID {
			m.nextID = item.ID
		}
	}
	return m
}

func SeedItems(restaurantID string) []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, RestaurantID: restaurantID, Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken and traditional spices",
			Price: 450, Category: "Main Course", Available: true, Popular: true, Rating: 4.8, PreparationTime: 25},
		{ID: 2, RestaurantID: restaurantID, Name: "Seekh Kabab", Description: "Grilled minced meat skewers with herbs and spices",
			Price: 380, Category: "Appetizers", Available: true, Popular: true, Rating: 4.6, PreparationTime: 15},
		{ID: 3, RestaurantID: restaurantID, Name: "Mutton Karahi", Description: "Traditional mutton curry cooked in a wok",
			Price: 850, Category: "Main Course", Available: false, Rating: 4.7, PreparationTime: 30},
		{ID: 4, RestaurantID: restaurantID, Name: "Kulfi", Description: "Traditional frozen dessert with pistachios",
			Price: 150, Category: "Desserts", Available: true, Rating: 4.5, PreparationTime: 5},
	}
}

func (m *MemoryRepository) ListItems(restaurantID string) ([]domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.MenuItem
	for _, item := range m.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MemoryRepository) GetItem(restaurantID string, itemID int) (*domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == itemID && item.RestaurantID == restaurantID {
			found := item
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryRepository) CreateItem(item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	item.ID = m.nextID
	item.CreatedAt = time.Now().UTC()
	m.items = append(m.items, *item)
	return nil
}

func (m *MemoryRepository) UpdateItem(item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = menu.WithItemReplaced(m.items, *item)
	return nil
}

func (m *MemoryRepository) DeleteItem(restaurantID string, itemID int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0:0]
	var removed int64
	for _, item := range m.items {
		if item.ID == itemID && item.RestaurantID == restaurantID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return removed, nil
}

func (m *MemoryRepository) SetAvailability(restaurantID string, itemID int, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == itemID && m.items[i].RestaurantID == restaurantID {
			m.items[i].Available = available
			return nil
		}
	}
	return sql.ErrNoRows
}
