package service

import (
	"context"

	"tablebook/discovery-svc/internal/domain"
)

type RestaurantRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
}

type SearchCache interface {
	SearchKey(criteria domain.FilterCriteria) string
	GetCandidates(ctx context.Context, key string) ([]domain.Restaurant, bool, error)
	SetCandidates(ctx context.Context, key string, candidates []domain.Restaurant) error
}

type FavoriteStore interface {
	ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error)
	Favorites(ctx context.Context, userID string) ([]string, error)
}

type DiscoveryServiceInterface interface {
	Search(ctx context.Context, location domain.Coordinates, criteria domain.FilterCriteria) ([]domain.Listing, error)
	Get(id string) (*domain.Restaurant, error)
	Availability(id string) (domain.Availability, error)
	FilterOptions() domain.FilterOptions
	ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error)
	Favorites(ctx context.Context, userID string) ([]string, error)
}

var _ DiscoveryServiceInterface = (*DiscoveryService)(nil)
