package mocks

import (
	"context"

	"takeaway/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantRepository is a mock type for the RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)
	return ret.Error(0)
}

func (_m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

// NewRestaurantRepository creates a new instance of RestaurantRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
