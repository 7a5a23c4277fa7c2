package mocks

import (
	"tablebook/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListItems(restaurantID string) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetItem(restaurantID string, itemID int) (*domain.MenuItem, error) {
	ret := _m.Called(restaurantID, itemID)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *MenuRepository) UpdateItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *MenuRepository) DeleteItem(restaurantID string, itemID int) (int64, error) {
	ret := _m.Called(restaurantID, itemID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MenuRepository) SetAvailability(restaurantID string, itemID int, available bool) error {
	return _m.Called(restaurantID, itemID, available).Error(0)
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MenuServiceInterface is a mock type for the MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) List(restaurantID, query, category string) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID, query, category)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Get(restaurantID string, itemID int) (*domain.MenuItem, error) {
	ret := _m.Called(restaurantID, itemID)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Create(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *MenuServiceInterface) Update(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *MenuServiceInterface) Delete(restaurantID string, itemID int) error {
	return _m.Called(restaurantID, itemID).Error(0)
}

func (_m *MenuServiceInterface) ToggleAvailability(restaurantID string, itemID int) (*domain.MenuItem, error) {
	ret := _m.Called(restaurantID, itemID)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
