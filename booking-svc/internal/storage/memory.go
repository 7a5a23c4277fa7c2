package storage

import (
	"database/sql"
	"sync"

	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"
)

// MemoryRepository keeps bookings in process. It backs STORAGE=memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	tables   []domain.Table
	bookings []domain.Booking
	qrCodes  map[string][]byte
}

func NewMemoryRepository(tables []domain.Table) *MemoryRepository {
	return &MemoryRepository{tables: tables, qrCodes: map[string][]byte{}}
}

// SeedTables mirrors the tables of the demo restaurant catalog.
func SeedTables() []domain.Table {
	var tables []domain.Table
	for _, restaurantID := range []string{"1", "2", "3"} {
		tables = append(tables,
			domain.Table{ID: "t1", RestaurantID: restaurantID, Type: "Small", Capacity: 2, Price: 50},
			domain.Table{ID: "t2", RestaurantID: restaurantID, Type: "Medium", Capacity: 4, Price: 100},
			domain.Table{ID: "t3", RestaurantID: restaurantID, Type: "Large", Capacity: 6, Price: 150},
		)
	}
	return tables
}

func (m *MemoryRepository) GetTable(restaurantID, tableID string) (*domain.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tables {
		if t.RestaurantID == restaurantID && t.ID == tableID {
			table := t
			return &table, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryRepository) CreateBooking(b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *b
	stored.PreOrders = append([]domain.PreOrder(nil), b.PreOrders...)
	m.bookings = append(m.bookings, stored)
	return nil
}

func (m *MemoryRepository) GetBooking(id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryRepository) ListByCustomer(customerID string) ([]domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListByRestaurant(restaurantID, date string) ([]domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.RestaurantID == restaurantID && (date == "" || b.Date == date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryRepository) UpdateStatus(id string, from, to domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id && b.Status == from {
			m.bookings = booking.WithStatusUpdated(m.bookings, id, to)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *MemoryRepository) SaveQRCode(id string, qr []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qrCodes[id] = qr
	return nil
}

func (m *MemoryRepository) GetQRCode(id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return m.qrCodes[id], nil
		}
	}
	return nil, sql.ErrNoRows
}
