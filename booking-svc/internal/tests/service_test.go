package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"
	"tablebook/booking-svc/internal/mocks"
	"tablebook/booking-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var mediumTable = &domain.Table{ID: "t2", RestaurantID: "1", Type: "Medium", Capacity: 4, Price: 100}

func validBooking() *domain.Booking {
	return &domain.Booking{
		CustomerID:   "u1",
		RestaurantID: "1",
		TableID:      "t2",
		Guests:       3,
		Date:         "2025-01-15",
		Time:         "7:30 PM",
		Chairs:       domain.ChairSelection{Single: 2, Double: 1},
		PreOrders: []domain.PreOrder{
			{ItemID: "1", Name: "Chicken Biryani", Price: 450, Quantity: 2},
		},
		PaymentMethod: "jazzcash",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mutate        func(b *domain.Booking)
		prepareMocks  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator)
		expectedError error
	}{
		{
			name:   "success",
			mutate: func(b *domain.Booking) {},
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
				repo.On("CreateBooking", mock.MatchedBy(func(b *domain.Booking) bool {
					return b.Status == domain.StatusPending && b.TotalAmount == 1020
				})).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", mock.Anything, []byte("png")).Return(nil).Once()
				pub.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e domain.BookingEvent) bool {
					return e.Type == domain.EventBookingCreated && e.RestaurantID == "1" && e.TotalAmount == 1020
				})).Return(nil).Once()
			},
		},
		{
			name:   "manual_chair_request_is_enough",
			mutate: func(b *domain.Booking) { b.Chairs = domain.ChairSelection{}; b.ManualChairRequest = "one wheelchair space" },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
				repo.On("CreateBooking", mock.Anything).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return(nil, errors.New("encode failed")).Once()
				pub.On("PublishBookingEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:          "missing_time",
			mutate:        func(b *domain.Booking) { b.Time = " " },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrMissingSchedule,
		},
		{
			name:          "no_chairs",
			mutate:        func(b *domain.Booking) { b.Chairs = domain.ChairSelection{} },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrChairsRequired,
		},
		{
			name:          "zero_guests",
			mutate:        func(b *domain.Booking) { b.Guests = 0 },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrInvalidGuests,
		},
		{
			name:   "too_many_guests",
			mutate: func(b *domain.Booking) { b.Guests = 5 },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
			},
			expectedError: service.ErrGuestsExceedCapacity,
		},
		{
			name:   "too_many_chairs",
			mutate: func(b *domain.Booking) { b.Chairs = domain.ChairSelection{Single: 4, High: 1} },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
			},
			expectedError: service.ErrChairsExceedCapacity,
		},
		{
			name:          "negative_chairs",
			mutate:        func(b *domain.Booking) { b.Chairs = domain.ChairSelection{Single: 4, Double: -3} },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrNegativeChairs,
		},
		{
			name:          "negative_pre_order_quantity",
			mutate:        func(b *domain.Booking) { b.PreOrders[0].Quantity = -2 },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrInvalidPreOrder,
		},
		{
			name:          "zero_pre_order_quantity",
			mutate:        func(b *domain.Booking) { b.PreOrders[0].Quantity = 0 },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrInvalidPreOrder,
		},
		{
			name:          "negative_pre_order_price",
			mutate:        func(b *domain.Booking) { b.PreOrders[0].Price = -450 },
			prepareMocks:  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {},
			expectedError: service.ErrInvalidPreOrder,
		},
		{
			name:   "client_payment_status_is_ignored",
			mutate: func(b *domain.Booking) { b.PaymentStatus = domain.PaymentPaid },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
				repo.On("CreateBooking", mock.MatchedBy(func(b *domain.Booking) bool {
					return b.PaymentStatus == domain.PaymentPending && b.TotalAmount == 1020
				})).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", mock.Anything, []byte("png")).Return(errors.New("disk full")).Once()
				pub.On("PublishBookingEvent", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "unknown_table",
			mutate: func(b *domain.Booking) { b.TableID = "t9" },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("GetTable", "1", "t9").Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrTableNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewBookingRepository(t)
			pub := mocks.NewEventPublisher(t)
			qr := mocks.NewQRGenerator(t)
			svc := service.NewBookingService(repo, pub, qr)

			testCase.prepareMocks(repo, pub, qr)
			b := validBooking()
			testCase.mutate(b)

			err := svc.Create(ctx, b)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			_, parseErr := uuid.Parse(b.ID)
			assert.NoError(t, parseErr)
			assert.Equal(t, domain.StatusPending, b.Status)
			assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
			assert.False(t, b.CreatedAt.IsZero())
		})
	}
}

func TestBookingService_Quote(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	svc := service.NewBookingService(repo, nil, nil)

	repo.On("GetTable", "1", "t2").Return(mediumTable, nil).Once()
	repo.On("GetTable", "1", "t9").Return(nil, sql.ErrNoRows).Once()

	q, err := svc.Quote(domain.QuoteRequest{
		RestaurantID: "1",
		TableID:      "t2",
		Chairs:       domain.ChairSelection{Double: 2},
		PreOrders:    []domain.PreOrder{{ItemID: "2", Price: 380, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Quote{TablePrice: 100, ChairCost: 40, PreOrderTotal: 380, Total: 520}, q)

	_, err = svc.Quote(domain.QuoteRequest{RestaurantID: "1", TableID: "t9"})
	assert.ErrorIs(t, err, service.ErrTableNotFound)

	_, err = svc.Quote(domain.QuoteRequest{RestaurantID: "1", TableID: "t2", Chairs: domain.ChairSelection{High: -1}})
	assert.ErrorIs(t, err, service.ErrNegativeChairs)

	_, err = svc.Quote(domain.QuoteRequest{
		RestaurantID: "1",
		TableID:      "t2",
		PreOrders:    []domain.PreOrder{{ItemID: "2", Price: 380, Quantity: -1}},
	})
	assert.ErrorIs(t, err, service.ErrInvalidPreOrder)
}

func TestBookingService_Transitions(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Booking {
		return &domain.Booking{ID: "b1", RestaurantID: "1", Date: "2025-01-15", Status: domain.StatusPending, TotalAmount: 1200}
	}

	tests := []struct {
		name          string
		call          func(svc *service.BookingService) (*domain.Booking, error)
		prepareMocks  func(repo *mocks.BookingRepository, pub *mocks.EventPublisher)
		expectedState domain.BookingStatus
		expectedError error
	}{
		{
			name: "confirm_pending",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Confirm(ctx, "b1", "1") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "b1").Return(pending(), nil).Once()
				repo.On("UpdateStatus", "b1", domain.StatusPending, domain.StatusConfirmed).Return(nil).Once()
				pub.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e domain.BookingEvent) bool {
					return e.Type == domain.EventBookingStatusChanged &&
						e.PreviousStatus == domain.StatusPending && e.Status == domain.StatusConfirmed
				})).Return(nil).Once()
			},
			expectedState: domain.StatusConfirmed,
		},
		{
			name: "decline_pending",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Decline(ctx, "b1", "1") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "b1").Return(pending(), nil).Once()
				repo.On("UpdateStatus", "b1", domain.StatusPending, domain.StatusCancelled).Return(nil).Once()
				pub.On("PublishBookingEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedState: domain.StatusCancelled,
		},
		{
			name: "complete_pending_rejected",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Complete(ctx, "b1", "1") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "b1").Return(pending(), nil).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name: "other_restaurant",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Confirm(ctx, "b1", "2") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "b1").Return(pending(), nil).Once()
			},
			expectedError: service.ErrNotYourRestaurant,
		},
		{
			name: "lost_race",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Confirm(ctx, "b1", "1") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "b1").Return(pending(), nil).Once()
				repo.On("UpdateStatus", "b1", domain.StatusPending, domain.StatusConfirmed).Return(sql.ErrNoRows).Once()
			},
			expectedError: service.ErrInvalidTransition,
		},
		{
			name: "missing_booking",
			call: func(svc *service.BookingService) (*domain.Booking, error) { return svc.Confirm(ctx, "nope", "1") },
			prepareMocks: func(repo *mocks.BookingRepository, pub *mocks.EventPublisher) {
				repo.On("GetBooking", "nope").Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrBookingNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewBookingRepository(t)
			pub := mocks.NewEventPublisher(t)
			svc := service.NewBookingService(repo, pub, nil)

			testCase.prepareMocks(repo, pub)
			b, err := testCase.call(svc)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedState, b.Status)
		})
	}
}

func TestBookingService_List(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	svc := service.NewBookingService(repo, nil, nil)

	repo.On("ListByCustomer", "u1").Return([]domain.Booking{
		{ID: "1", CustomerID: "u1", Status: domain.StatusConfirmed},
		{ID: "2", CustomerID: "u1", Status: domain.StatusCompleted},
	}, nil).Once()
	repo.On("ListByRestaurant", "1", "2025-01-15").Return([]domain.Booking{
		{ID: "3", RestaurantID: "1", Date: "2025-01-15", Status: domain.StatusPending},
	}, nil).Once()

	past, err := svc.List(booking.CustomerView{CustomerID: "u1", Tab: booking.TabPast})
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "2", past[0].ID)

	today, err := svc.List(booking.OwnerView{RestaurantID: "1", Date: "2025-01-15"})
	require.NoError(t, err)
	assert.Len(t, today, 1)

	_, err = svc.List(nil)
	assert.ErrorIs(t, err, booking.ErrUnknownRole)
}

func TestBookingService_QRCode(t *testing.T) {
	repo := mocks.NewBookingRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewBookingService(repo, nil, qr)

	repo.On("GetQRCode", "b1").Return([]byte("stored"), nil).Once()
	repo.On("GetQRCode", "b2").Return(nil, nil).Once()
	qr.On("Generate", "b2").Return([]byte("fresh"), nil).Once()
	repo.On("SaveQRCode", "b2", []byte("fresh")).Return(nil).Once()
	repo.On("GetQRCode", "b3").Return(nil, sql.ErrNoRows).Once()
	repo.On("GetQRCode", "b4").Return(nil, nil).Once()
	qr.On("Generate", "b4").Return([]byte("fresh4"), nil).Once()
	repo.On("SaveQRCode", "b4", []byte("fresh4")).Return(errors.New("db down")).Once()
	repo.On("GetQRCode", "b5").Return(nil, nil).Once()
	qr.On("Generate", "b5").Return(nil, errors.New("encode failed")).Once()

	code, err := svc.QRCode("b1")
	require.NoError(t, err)
	assert.Equal(t, []byte("stored"), code)

	code, err = svc.QRCode("b2")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)

	_, err = svc.QRCode("b3")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)

	code, err = svc.QRCode("b4")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh4"), code)

	code, err = svc.QRCode("b5")
	require.NoError(t, err)
	assert.Empty(t, code)

	assert.Equal(t, "/api/bookings/b1/qrcode", svc.QRLink("b1"))
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}.Generate("b1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
