package service

import (
	"context"

	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"
)

type BookingServiceInterface interface {
	Quote(req domain.QuoteRequest) (domain.Quote, error)
	Create(ctx context.Context, b *domain.Booking) error
	Confirm(ctx context.Context, id, restaurantID string) (*domain.Booking, error)
	Decline(ctx context.Context, id, restaurantID string) (*domain.Booking, error)
	Complete(ctx context.Context, id, restaurantID string) (*domain.Booking, error)
	Get(id string) (*domain.Booking, error)
	List(view booking.View) ([]domain.Booking, error)
	QRCode(id string) ([]byte, error)
	QRLink(id string) string
}

type BookingRepository interface {
	GetTable(restaurantID, tableID string) (*domain.Table, error)
	CreateBooking(b *domain.Booking) error
	GetBooking(id string) (*domain.Booking, error)
	ListByCustomer(customerID string) ([]domain.Booking, error)
	ListByRestaurant(restaurantID, date string) ([]domain.Booking, error)
	// UpdateStatus moves the booking only while it is still in status from.
	// It returns sql.ErrNoRows when nothing matched.
	UpdateStatus(id string, from, to domain.BookingStatus) error
	SaveQRCode(id string, qr []byte) error
	GetQRCode(id string) ([]byte, error)
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}

var _ BookingServiceInterface = (*BookingService)(nil)
