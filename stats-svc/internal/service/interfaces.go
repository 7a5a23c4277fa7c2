package service

import (
	"context"

	"tablebook/stats-svc/internal/domain"
	"tablebook/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	ApplyCreated(ctx context.Context, event domain.BookingEvent) error
	ApplyStatusChange(ctx context.Context, event domain.BookingEvent) error
	Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error)
}

type StatsServiceInterface interface {
	Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error)
}

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ StoreInterface = (*storage.RedisStore)(nil)
var _ messageReader = (*kafka.Reader)(nil)
