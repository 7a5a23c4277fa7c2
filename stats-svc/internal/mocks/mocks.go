package mocks

import (
	"context"

	"tablebook/stats-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) ApplyCreated(ctx context.Context, event domain.BookingEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_m *StoreInterface) ApplyStatusChange(ctx context.Context, event domain.BookingEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_m *StoreInterface) Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error) {
	ret := _m.Called(ctx, restaurantID, date)
	return ret.Get(0).(domain.DashboardStats), ret.Error(1)
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// StatsServiceInterface is a mock type for the StatsServiceInterface type
type StatsServiceInterface struct {
	mock.Mock
}

func (_m *StatsServiceInterface) Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error) {
	ret := _m.Called(ctx, restaurantID, date)
	return ret.Get(0).(domain.DashboardStats), ret.Error(1)
}

func NewStatsServiceInterface(t testingT) *StatsServiceInterface {
	m := &StatsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MessageReader replays a fixed list of messages, then blocks until ctx is done.
type MessageReader struct {
	Messages []kafka.Message
}

func (r *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.Messages) > 0 {
		msg := r.Messages[0]
		r.Messages = r.Messages[1:]
		return msg, nil
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}
