package mocks

import (
	"context"

	"tablebook/booking-svc/internal/booking"
	"tablebook/booking-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// BookingRepository is a mock type for the BookingRepository type
type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) GetTable(restaurantID, tableID string) (*domain.Table, error) {
	ret := _m.Called(restaurantID, tableID)
	var r0 *domain.Table
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) CreateBooking(b *domain.Booking) error {
	return _m.Called(b).Error(0)
}

func (_m *BookingRepository) GetBooking(id string) (*domain.Booking, error) {
	ret := _m.Called(id)
	var r0 *domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) ListByCustomer(customerID string) ([]domain.Booking, error) {
	ret := _m.Called(customerID)
	var r0 []domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) ListByRestaurant(restaurantID, date string) ([]domain.Booking, error) {
	ret := _m.Called(restaurantID, date)
	var r0 []domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) UpdateStatus(id string, from, to domain.BookingStatus) error {
	return _m.Called(id, from, to).Error(0)
}

func (_m *BookingRepository) SaveQRCode(id string, qr []byte) error {
	return _m.Called(id, qr).Error(0)
}

func (_m *BookingRepository) GetQRCode(id string) ([]byte, error) {
	ret := _m.Called(id)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func NewBookingRepository(t testingT) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// EventPublisher is a mock type for the EventPublisher type
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// QRGenerator is a mock type for the QRGenerator type
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(bookingID string) ([]byte, error) {
	ret := _m.Called(bookingID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// BookingServiceInterface is a mock type for the BookingServiceInterface type
type BookingServiceInterface struct {
	mock.Mock
}

func (_m *BookingServiceInterface) Quote(req domain.QuoteRequest) (domain.Quote, error) {
	ret := _m.Called(req)
	return ret.Get(0).(domain.Quote), ret.Error(1)
}

func (_m *BookingServiceInterface) Create(ctx context.Context, b *domain.Booking) error {
	return _m.Called(ctx, b).Error(0)
}

func (_m *BookingServiceInterface) status(ctx context.Context, name, id, restaurantID string) (*domain.Booking, error) {
	ret := _m.MethodCalled(name, ctx, id, restaurantID)
	var r0 *domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingServiceInterface) Confirm(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return _m.status(ctx, "Confirm", id, restaurantID)
}

func (_m *BookingServiceInterface) Decline(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return _m.status(ctx, "Decline", id, restaurantID)
}

func (_m *BookingServiceInterface) Complete(ctx context.Context, id, restaurantID string) (*domain.Booking, error) {
	return _m.status(ctx, "Complete", id, restaurantID)
}

func (_m *BookingServiceInterface) Get(id string) (*domain.Booking, error) {
	ret := _m.Called(id)
	var r0 *domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingServiceInterface) List(view booking.View) ([]domain.Booking, error) {
	ret := _m.Called(view)
	var r0 []domain.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingServiceInterface) QRCode(id string) ([]byte, error) {
	ret := _m.Called(id)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *BookingServiceInterface) QRLink(id string) string {
	return _m.Called(id).String(0)
}

func NewBookingServiceInterface(t testingT) *BookingServiceInterface {
	m := &BookingServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
