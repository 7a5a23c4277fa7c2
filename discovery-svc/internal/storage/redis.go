package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"tablebook/discovery-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// SearchKey is a canonical form of the location-independent criteria, so
// equivalent searches share an entry whoever makes them. Distance bounds are
// left out because they are applied per caller.
func (c *RedisCache) SearchKey(criteria domain.FilterCriteria) string {
	facilities := append([]string(nil), criteria.Facilities...)
	sort.Strings(facilities)

	parts := []string{
		"search",
		strings.ToLower(strings.TrimSpace(criteria.Query)),
		strings.TrimSpace(criteria.Cuisine),
		strings.TrimSpace(criteria.PriceRange),
		strconv.FormatFloat(criteria.MinRating, 'f', -1, 64),
		strings.Join(facilities, ","),
	}
	return strings.Join(parts, ":")
}

func (c *RedisCache) GetCandidates(ctx context.Context, key string) ([]domain.Restaurant, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var candidates []domain.Restaurant
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, false, err
	}
	return candidates, true, nil
}

func (c *RedisCache) SetCandidates(ctx context.Context, key string, candidates []domain.Restaurant) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func favoritesKey(userID string) string {
	return "favorites:" + userID
}

// ToggleFavorite flips membership and reports whether the restaurant is now a favorite.
func (c *RedisCache) ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	key := favoritesKey(userID)
	removed, err := c.Client.SRem(ctx, key, restaurantID).Result()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}
	if err := c.Client.SAdd(ctx, key, restaurantID).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Favorites(ctx context.Context, userID string) ([]string, error) {
	ids, err := c.Client.SMembers(ctx, favoritesKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}
