package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablebook/stats-svc/internal/domain"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type StatsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// Dashboard returns the counters for one restaurant day. An empty date means today.
func (s *StatsService) Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error) {
	if date == "" || date == "today" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.DashboardStats{}, ErrInvalidDate
	}

	stats, err := s.store.Dashboard(ctx, restaurantID, date)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

var _ StatsServiceInterface = (*StatsService)(nil)
