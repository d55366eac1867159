package mocks

import (
	"context"

	"takeaway/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// DishRepository is a mock type for the DishRepository type
type DishRepository struct {
	mock.Mock
}

func (_m *DishRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	ret := _m.Called(ctx, dish)
	return ret.Error(0)
}

func (_m *DishRepository) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Dish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Dish)
	}
	return r0, ret.Error(1)
}

func (_m *DishRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Dish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dish)
	}
	return r0, ret.Error(1)
}

// NewDishRepository creates a new instance of DishRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDishRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *DishRepository {
	m := &DishRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
