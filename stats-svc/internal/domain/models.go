package domain

import "time"

const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

type PreOrder struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// BookingEvent is the message booking-svc writes to the bookings topic.
type BookingEvent struct {
	Type           string     `json:"type"`
	BookingID      string     `json:"booking_id"`
	RestaurantID   string     `json:"restaurant_id"`
	Date           string     `json:"date"`
	Status         string     `json:"status"`
	PreviousStatus string     `json:"previous_status,omitempty"`
	Guests         int        `json:"guests"`
	TotalAmount    float64    `json:"total_amount"`
	PreOrders      []PreOrder `json:"pre_orders,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

type DishCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DashboardStats struct {
	RestaurantID  string      `json:"restaurant_id"`
	Date          string      `json:"date"`
	TotalBookings int         `json:"total_bookings"`
	Pending       int         `json:"pending"`
	Confirmed     int         `json:"confirmed"`
	Completed     int         `json:"completed"`
	Cancelled     int         `json:"cancelled"`
	Guests        int         `json:"guests"`
	Revenue       float64     `json:"revenue"`
	TopDishes     []DishCount `json:"top_dishes"`
}
