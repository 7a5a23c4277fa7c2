package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"tablebook/discovery-svc/internal/domain"
	"tablebook/discovery-svc/internal/search"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrFavoritesDisabled  = errors.New("favorites store not configured")
)

var DefaultLocation = domain.Coordinates{Latitude: 24.8607, Longitude: 67.0011}

type DiscoveryService struct {
	repository RestaurantRepository
	cache      SearchCache
	favorites  FavoriteStore
}

func NewDiscoveryService(repository RestaurantRepository, cache SearchCache, favorites FavoriteStore) *DiscoveryService {
	return &DiscoveryService{
		repository: repository,
		cache:      cache,
		favorites:  favorites,
	}
}

// Search caches only the location-independent candidate set. Distances and
// distance bounds are always computed from the caller's exact location.
func (s *DiscoveryService) Search(ctx context.Context, location domain.Coordinates, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	candidates, err := s.candidates(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return search.Listings(candidates, location, criteria), nil
}

func (s *DiscoveryService) candidates(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Restaurant, error) {
	var key string
	if s.cache != nil {
		key = s.cache.SearchKey(criteria)
		cached, ok, err := s.cache.GetCandidates(ctx, key)
		if err != nil {
			log.Printf("Warning: search cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	restaurants, err := s.repository.ListRestaurants()
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	candidates := search.Candidates(restaurants, criteria)

	if s.cache != nil {
		if err := s.cache.SetCandidates(ctx, key, candidates); err != nil {
			log.Printf("Warning: search cache write failed: %v", err)
		}
	}
	return candidates, nil
}

func (s *DiscoveryService) Get(id string) (*domain.Restaurant, error) {
	rest, err := s.repository.GetRestaurant(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *DiscoveryService) Availability(id string) (domain.Availability, error) {
	rest, err := s.Get(id)
	if err != nil {
		return domain.Availability{}, err
	}
	return domain.Availability{
		RestaurantID:    rest.ID,
		TotalTables:     len(rest.Tables),
		AvailableTables: search.AvailableTableCount(*rest),
		NextAvailable:   search.NextAvailableLabel(*rest),
		Tables:          rest.Tables,
	}, nil
}

func (s *DiscoveryService) FilterOptions() domain.FilterOptions {
	return domain.FilterOptions{
		Cuisines:    []string{search.AllOption, "Pakistani", "Indian", "Chinese", "Italian", "Fast Food"},
		PriceRanges: []string{search.AllOption, "₨", "₨₨", "₨₨₨"},
		Ratings:     []string{search.AllOption, "4.5+", "4.0+", "3.5+"},
		Distances:   []string{search.AllOption, "< 1 km", "< 2 km", "< 5 km"},
		Facilities:  []string{"WiFi", "Parking", "AC", "Outdoor Seating"},
	}
}

func (s *DiscoveryService) ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	if s.favorites == nil {
		return false, ErrFavoritesDisabled
	}
	if _, err := s.Get(restaurantID); err != nil {
		return false, err
	}
	return s.favorites.ToggleFavorite(ctx, userID, restaurantID)
}

func (s *DiscoveryService) Favorites(ctx context.Context, userID string) ([]string, error) {
	if s.favorites == nil {
		return nil, ErrFavoritesDisabled
	}
	return s.favorites.Favorites(ctx, userID)
}
