package domain

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type ChairType string

const (
	ChairSingle ChairType = "single"
	ChairDouble ChairType = "double"
	ChairHigh   ChairType = "high"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type ChairSelection struct {
	Single int `json:"single"`
	Double int `json:"double"`
	High   int `json:"high"`
}

type PreOrder struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Table struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	Price        float64 `json:"price"`
}

type Booking struct {
	ID                 string         `json:"id"`
	CustomerID         string         `json:"customer_id"`
	CustomerName       string         `json:"customer_name"`
	CustomerPhone      string         `json:"customer_phone"`
	RestaurantID       string         `json:"restaurant_id"`
	TableID            string         `json:"table_id"`
	Guests             int            `json:"guests"`
	Date               string         `json:"date"`
	Time               string         `json:"time"`
	Chairs             ChairSelection `json:"chairs"`
	ManualChairRequest string         `json:"manual_chair_request,omitempty"`
	PreOrders          []PreOrder     `json:"pre_orders,omitempty"`
	SpecialRequests    string         `json:"special_requests,omitempty"`
	Status             BookingStatus  `json:"status"`
	PaymentStatus      string         `json:"payment_status"`
	PaymentMethod      string         `json:"payment_method"`
	TotalAmount        float64        `json:"total_amount"`
	QRCode             string         `json:"qr_code,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

type QuoteRequest struct {
	RestaurantID string         `json:"restaurant_id"`
	TableID      string         `json:"table_id"`
	Chairs       ChairSelection `json:"chairs"`
	PreOrders    []PreOrder     `json:"pre_orders,omitempty"`
}

type Quote struct {
	TablePrice    float64 `json:"table_price"`
	ChairCost     float64 `json:"chair_cost"`
	PreOrderTotal float64 `json:"pre_order_total"`
	Total         float64 `json:"total"`
}

const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

type BookingEvent struct {
	Type           string        `json:"type"`
	BookingID      string        `json:"booking_id"`
	RestaurantID   string        `json:"restaurant_id"`
	Date           string        `json:"date"`
	Status         BookingStatus `json:"status"`
	PreviousStatus BookingStatus `json:"previous_status,omitempty"`
	Guests         int           `json:"guests"`
	TotalAmount    float64       `json:"total_amount"`
	PreOrders      []PreOrder    `json:"pre_orders,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}
