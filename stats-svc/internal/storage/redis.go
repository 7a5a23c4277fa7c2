package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tablebook/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const topDishesLimit = 5

// Status counters share names with booking statuses so a status change is a
// decrement of one field and an increment of another.
var statusFields = []string{"pending", "confirmed", "completed", "cancelled"}

type RedisStore struct {
	Client *redis.Client
	// TTL bounds how long a day's counters are kept.
	TTL time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func statsKey(restaurantID, date string) string {
	return fmt.Sprintf("stats:%s:%s", restaurantID, date)
}

func dishesKey(restaurantID, date string) string {
	return fmt.Sprintf("stats:dishes:%s:%s", restaurantID, date)
}

// Both scripts check the seen marker first and set it only after every
// counter write succeeded, so a failed apply is retried in full on redelivery
// and a completed one is never counted twice.
var applyCreatedScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then return 0 end
redis.call('HINCRBY', KEYS[2], 'bookings', 1)
redis.call('HINCRBY', KEYS[2], ARGV[2], 1)
redis.call('HINCRBY', KEYS[2], 'guests', ARGV[3])
redis.call('HINCRBYFLOAT', KEYS[2], 'revenue', ARGV[4])
redis.call('EXPIRE', KEYS[2], ARGV[1])
for i = 5, #ARGV, 2 do
  redis.call('ZINCRBY', KEYS[3], ARGV[i], ARGV[i + 1])
end
if #ARGV >= 5 then redis.call('EXPIRE', KEYS[3], ARGV[1]) end
redis.call('SET', KEYS[1], 1, 'EX', ARGV[1])
return 1
`)

var applyStatusChangeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then return 0 end
if ARGV[2] ~= '' then redis.call('HINCRBY', KEYS[2], ARGV[2], -1) end
redis.call('HINCRBY', KEYS[2], ARGV[3], 1)
if ARGV[4] ~= '0' then redis.call('HINCRBYFLOAT', KEYS[2], 'revenue', ARGV[4]) end
redis.call('EXPIRE', KEYS[2], ARGV[1])
redis.call('SET', KEYS[1], 1, 'EX', ARGV[1])
return 1
`)

// SeenKey marks one delivery of an event as applied.
func SeenKey(event domain.BookingEvent) string {
	return fmt.Sprintf("stats:seen:%s:%s:%s", event.BookingID, event.Type, event.Status)
}

func (s *RedisStore) ttlSeconds() int64 {
	if secs := int64(s.TTL / time.Second); secs > 0 {
		return secs
	}
	return 1
}

func (s *RedisStore) ApplyCreated(ctx context.Context, event domain.BookingEvent) error {
	keys := []string{SeenKey(event), statsKey(event.RestaurantID, event.Date), dishesKey(event.RestaurantID, event.Date)}
	args := []interface{}{s.ttlSeconds(), event.Status, event.Guests, event.TotalAmount}
	for _, item := range event.PreOrders {
		args = append(args, item.Quantity, item.Name)
	}
	return applyCreatedScript.Run(ctx, s.Client, keys, args...).Err()
}

// ApplyStatusChange moves one booking between status counters. Cancelled
// bookings stop counting toward revenue.
func (s *RedisStore) ApplyStatusChange(ctx context.Context, event domain.BookingEvent) error {
	revenueDelta := "0"
	if event.Status == "cancelled" {
		revenueDelta = strconv.FormatFloat(-event.TotalAmount, 'f', -1, 64)
	}
	keys := []string{SeenKey(event), statsKey(event.RestaurantID, event.Date)}
	args := []interface{}{s.ttlSeconds(), event.PreviousStatus, event.Status, revenueDelta}
	return applyStatusChangeScript.Run(ctx, s.Client, keys, args...).Err()
}

func (s *RedisStore) Dashboard(ctx context.Context, restaurantID, date string) (domain.DashboardStats, error) {
	stats := domain.DashboardStats{RestaurantID: restaurantID, Date: date, TopDishes: []domain.DishCount{}}

	fields, err := s.Client.HGetAll(ctx, statsKey(restaurantID, date)).Result()
	if err != nil {
		return stats, err
	}
	atoi := func(field string) int {
		n, _ := strconv.Atoi(fields[field])
		return n
	}
	stats.TotalBookings = atoi("bookings")
	stats.Guests = atoi("guests")
	stats.Pending = atoi(statusFields[0])
	stats.Confirmed = atoi(statusFields[1])
	stats.Completed = atoi(statusFields[2])
	stats.Cancelled = atoi(statusFields[3])
	stats.Revenue, _ = strconv.ParseFloat(fields["revenue"], 64)

	top, err := s.Client.ZRevRangeWithScores(ctx, dishesKey(restaurantID, date), 0, topDishesLimit-1).Result()
	if err != nil {
		return stats, err
	}
	for _, member := range top {
		name, _ := member.Member.(string)
		stats.TopDishes = append(stats.TopDishes, domain.DishCount{Name: name, Quantity: int(member.Score)})
	}
	return stats, nil
}
