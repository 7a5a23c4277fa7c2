package mocks

import (
	"context"

	"tablebook/discovery-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// RestaurantRepository is a mock type for the RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SearchCache is a mock type for the SearchCache type
type SearchCache struct {
	mock.Mock
}

func (_m *SearchCache) SearchKey(criteria domain.FilterCriteria) string {
	ret := _m.Called(criteria)
	return ret.String(0)
}

func (_m *SearchCache) GetCandidates(ctx context.Context, key string) ([]domain.Restaurant, bool, error) {
	ret := _m.Called(ctx, key)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *SearchCache) SetCandidates(ctx context.Context, key string, candidates []domain.Restaurant) error {
	ret := _m.Called(ctx, key, candidates)
	return ret.Error(0)
}

func NewSearchCache(t testingT) *SearchCache {
	m := &SearchCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FavoriteStore is a mock type for the FavoriteStore type
type FavoriteStore struct {
	mock.Mock
}

func (_m *FavoriteStore) ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	ret := _m.Called(ctx, userID, restaurantID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FavoriteStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	ret := _m.Called(ctx, userID)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func NewFavoriteStore(t testingT) *FavoriteStore {
	m := &FavoriteStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DiscoveryServiceInterface is a mock type for the DiscoveryServiceInterface type
type DiscoveryServiceInterface struct {
	mock.Mock
}

func (_m *DiscoveryServiceInterface) Search(ctx context.Context, location domain.Coordinates, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	ret := _m.Called(ctx, location, criteria)
	var r0 []domain.Listing
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Listing)
	}
	return r0, ret.Error(1)
}

func (_m *DiscoveryServiceInterface) Get(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *DiscoveryServiceInterface) Availability(id string) (domain.Availability, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Availability), ret.Error(1)
}

func (_m *DiscoveryServiceInterface) FilterOptions() domain.FilterOptions {
	ret := _m.Called()
	return ret.Get(0).(domain.FilterOptions)
}

func (_m *DiscoveryServiceInterface) ToggleFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	ret := _m.Called(ctx, userID, restaurantID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *DiscoveryServiceInterface) Favorites(ctx context.Context, userID string) ([]string, error) {
	ret := _m.Called(ctx, userID)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func NewDiscoveryServiceInterface(t testingT) *DiscoveryServiceInterface {
	m := &DiscoveryServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
