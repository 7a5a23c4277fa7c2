package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrMissingSchedule      = errors.New("date and time are required")
	ErrChairsRequired       = errors.New("select chairs or describe the chair arrangement")
	ErrInvalidGuests        = errors.New("at least one guest is required")
	ErrGuestsExceedCapacity = errors.New("guest count exceeds table capacity")
	ErrChairsExceedCapacity = errors.New("chair count exceeds table capacity")
	ErrNegativeChairs       = errors.New("chair counts cannot be negative")
	ErrInvalidPreOrder      = errors.New("pre-order needs a quantity of at least 1 and a non-negative price")
	ErrTableNotFound        = errors.New("table not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidTransition    = errors.New("booking cannot move to that status")
	ErrNotYourRestaurant    = errors.New("booking belongs to another restaurant")
)

type BookingService struct {
	repository BookingRepository
	publisher  EventPublisher
	qrEncoder  QRGenerator
	now        func() time.Time
}

func NewBookingService(repository BookingRepository, publisher EventPublisher, qr QRGenerator) *BookingService {
	return &BookingService{
		repository: repository,
		publisher:  publisher,
		qrEncoder:  qr,
		now:        time.Now,
	}
}

func (s *BookingService) table(restaurantID, tableID string) (*domain.Table, error) {
	table, err := s.repository.GetTable(restaurantID, tableID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return table, nil
}

func (s *BookingService) Quote(req domain.QuoteRequest) (domain.Quote, error) {
	if err := validateLines(req.Chairs, req.PreOrders); err != nil {
		return domain.Quote{}, err
	}
	table, err := s.table(req.RestaurantID, req.TableID)
	if err != nil {
		return domain.Quote{}, err
	}
	return booking.Quote(table.Price, req.Chairs, req.PreOrders), nil
}

// validateLines keeps every priced line non-negative so totals cannot go
// below the table price.
func validateLines(chairs domain.ChairSelection, preOrders []domain.PreOrder) error {
	if chairs.Single < 0 || chairs.Double < 0 || chairs.High < 0 {
		return ErrNegativeChairs
	}
	for _, item := range preOrders {
		if item.Quantity < 1 || item.Price < 0 {
			return ErrInvalidPreOrder
		}
	}
	return nil
}

func validate(b *domain.Booking) error {
	if strings.TrimSpace(b.Date) == "" || strings.TrimSpace(b.Time) == "" {
		return ErrMissingSchedule
	}
	if err := validateLines(b.Chairs, b.PreOrders); err != nil {
		return err
	}
	if booking.TotalChairs(b.Chairs) == 0 && strings.TrimSpace(b.ManualChairRequest) == "" {
		return ErrChairsRequired
	}
	if b.Guests < 1 {
		return ErrInvalidGuests
	}
	return nil
}

func (s *BookingService) Create(ctx context.Context, b *domain.Booking) error {
	if err := validate(b); err != nil {
		return err
	}

	table, err := s.table(b.RestaurantID, b.TableID)
	if err != nil {
		return err
	}
	if b.Guests > table.Capacity {
		return ErrGuestsExceedCapacity
	}
	if booking.TotalChairs(b.Chairs) > table.Capacity {
		return ErrChairsExceedCapacity
	}

	b.ID = uuid.NewString()
	b.Status = domain.StatusPending
	// Payments are settled elsewhere; a new booking is never created as paid.
	b.PaymentStatus = domain.PaymentPending
	b.TotalAmount = booking.Quote(table.Price, b.Chairs, b.PreOrders).Total
	b.CreatedAt = s.now().UTC()

	if err := s.repository.CreateBooking(b); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(b.ID)
		if err != nil {
			log.Printf("Warning: failed to generate QR code for booking %s: %v", b.ID, err)
		} else if err := s.repository.SaveQRCode(b.ID, qr); err != nil {
			log.Printf("Warning: failed to store QR code for booking %s: %v", b.ID, err)
		}
	}

	s.publish(ctx, domain.BookingEvent{
		Type:         domain.EventBookingCreated,
		BookingID:    b.ID,
		RestaurantID: b.RestaurantID,
		Date:         b.Date,
		Status:       b.Status,
		Guests:       b.Guests,
		TotalAmount:  b.TotalAmount,
		PreOrders:    b.PreOrders,
	})

	log.Printf("Created booking %s for restaurant %s on %s %s", b.ID, b.RestaurantID, b.Date, b.Time)
	return nil
}

func (s *BookingService) publish(ctx context.Context, event domain.BookingEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s for booking %s: %v", event.Type, event.BookingID, err)
	}
}

func (s *BookingService) transition(ctx context.Context, id, restaurantID string, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if b.RestaurantID != restaurantID {
		return nil, ErrNotYourRestaurant
	}
	if !booking.CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}

	from := b.Status
	if err := s.repository.UpdateStatus(id, from, to); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Someone else moved it first.
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = to

	s.publish(ctx, domain.BookingEvent{
		Type:           domain.EventBookingStatusChanged,
		BookingID:      b.ID,
		RestaurantID:   b.RestaurantID,
		Date:           b.Date,
		Status:         to,
		PreviousStatus: from,
		Guests:         b.Guests,
		TotalAmount:    b.TotalAmount,
	})
	return b, nil
}

func (s *BookingService) Confirm(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return s.transition(ctx, id, restaurantID, domain.StatusConfirmed)
}

func (s *BookingService) Decline(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return s.transition(ctx, id, restaurantID, domain.StatusCancelled)
}

func (s *BookingService) Complete(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return s.transition(ctx, id, restaurantID, domain.StatusCompleted)
}

func (s *BookingService) Get(id string) (*domain.Booking, error) {
	b, err := s.repository.GetBooking(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) List(view booking.View) ([]domain.Booking, error) {
	var (
		list []domain.Booking
		err  error
	)
	switch v := view.(type) {
	case booking.CustomerView:
		list, err = s.repository.ListByCustomer(v.CustomerID)
	case booking.OwnerView:
		list, err = s.repository.ListByRestaurant(v.RestaurantID, v.Date)
	default:
		return nil, booking.ErrUnknownRole
	}
	if err != nil {
		return nil, err
	}
	return booking.Select(view, list), nil
}

func (s *BookingService) QRCode(id string) ([]byte, error) {
	qr, err := s.repository.GetQRCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(id)
		if err != nil {
			log.Printf("Warning: failed to regenerate QR code for booking %s: %v", id, err)
			return qr, nil
		}
		if err := s.repository.SaveQRCode(id, regenerated); err != nil {
			log.Printf("Warning: failed to store regenerated QR code for booking %s: %v", id, err)
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *BookingService) QRLink(id string) string {
	return fmt.Sprintf("/api/bookings/%s/qrcode", id)
}
