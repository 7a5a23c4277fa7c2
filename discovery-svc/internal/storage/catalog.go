package storage

import (
	"database/sql"
	"sync"

	"tablebook/discovery-svc/internal/domain"
)

// Catalog serves a fixed restaurant dataset from memory. It backs the
// STORAGE=memory mode and the tests.
type Catalog struct {
	mu          sync.RWMutex
	restaurants []domain.Restaurant
}

func NewCatalog(restaurants []domain.Restaurant) *Catalog {
	return &Catalog{restaurants: restaurants}
}

func NewSeedCatalog() *Catalog {
	return NewCatalog(SeedRestaurants())
}

func (c *Catalog) ListRestaurants() ([]domain.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out, nil
}

func (c *Catalog) GetRestaurant(id string) (*domain.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.restaurants {
		if r.ID == id {
			rest := r
			return &rest, nil
		}
	}
	return nil, sql.ErrNoRows
}

func SeedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:             "1",
			Name:           "Karachi Kitchen",
			ImageURL:       "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:         4.8,
			TotalReviews:   324,
			Cuisine:        "Pakistani",
			PriceRange:     "₨₨",
			Popular:        true,
			Address:        "123 Main Street, Karachi",
			OperatingHours: "10:00 AM - 11:00 PM",
			Facilities:     []string{"WiFi", "Parking", "AC"},
			Coordinates:    domain.Coordinates{Latitude: 24.8607, Longitude: 67.0011},
			Menu: []domain.MenuItem{
				{Name: "Chicken Biryani", Price: 450, Category: "Main Course"},
				{Name: "Seekh Kabab", Price: 320, Category: "Appetizers"},
				{Name: "Karahi Chicken", Price: 380, Category: "Main Course"},
			},
			Tables: []domain.Table{
				{ID: "t1", Type: "Small", Capacity: 2, Available: true, Price: 50},
				{ID: "t2", Type: "Medium", Capacity: 4, Available: false, BookedUntil: "8:00 PM", Price: 100},
				{ID: "t3", Type: "Large", Capacity: 6, Available: true, Price: 150},
			},
			Reviews: []domain.Review{
				{Rating: 5, Comment: "Excellent food and service!", Author: "Ahmed K."},
				{Rating: 4, Comment: "Great biryani, will come again.", Author: "Sarah A."},
			},
		},
		{
			ID:             "2",
			Name:           "Lahore Delights",
			ImageURL:       "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:         4.6,
			TotalReviews:   256,
			Cuisine:        "Punjabi",
			PriceRange:     "₨₨₨",
			Address:        "456 Food Street, Lahore",
			OperatingHours: "11:00 AM - 12:00 AM",
			Facilities:     []string{"WiFi", "AC"},
			Coordinates:    domain.Coordinates{Latitude: 24.8707, Longitude: 67.0111},
			Menu: []domain.MenuItem{
				{Name: "Lahori Chargha", Price: 650, Category: "Main Course"},
				{Name: "Kulfi", Price: 120, Category: "Desserts"},
			},
			Tables: []domain.Table{
				{ID: "t1", Type: "Small", Capacity: 2, Available: true, Price: 50},
				{ID: "t2", Type: "Medium", Capacity: 4, Available: true, Price: 100},
				{ID: "t3", Type: "Large", Capacity: 6, Available: false, BookedUntil: "9:30 PM", Price: 150},
			},
			Reviews: []domain.Review{
				{Rating: 5, Comment: "Authentic Punjabi taste!", Author: "Hassan M."},
				{Rating: 4, Comment: "Good food, nice ambiance.", Author: "Fatima S."},
			},
		},
		{
			ID:             "3",
			Name:           "Spice Garden",
			ImageURL:       "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:         4.7,
			TotalReviews:   189,
			Cuisine:        "Indian",
			PriceRange:     "₨₨",
			Popular:        true,
			Address:        "789 Spice Lane, Mumbai",
			OperatingHours: "12:00 PM - 11:30 PM",
			Facilities:     []string{"WiFi", "Parking"},
			Coordinates:    domain.Coordinates{Latitude: 24.8507, Longitude: 67.0211},
			Menu: []domain.MenuItem{
				{Name: "Butter Chicken", Price: 420, Category: "Main Course"},
				{Name: "Naan", Price: 80, Category: "Bread"},
			},
			Tables: []domain.Table{
				{ID: "t1", Type: "Small", Capacity: 2, Available: false, BookedUntil: "7:30 PM", Price: 50},
				{ID: "t2", Type: "Medium", Capacity: 4, Available: true, Price: 100},
				{ID: "t3", Type: "Large", Capacity: 6, Available: true, Price: 150},
			},
			Reviews: []domain.Review{
				{Rating: 5, Comment: "Best Indian food in the city!", Author: "Priya R."},
			},
		},
	}
}
