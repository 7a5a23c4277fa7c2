package domain

import "time"

type MenuItem struct {
	ID              int       `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image"`
	Available       bool      `json:"available"`
	Popular         bool      `json:"popular"`
	Rating          float64   `json:"rating"`
	PreparationTime int       `json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
}
