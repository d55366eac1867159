package mocks

import (
	"context"

	"takeaway/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) orderResult(ret mock.Arguments) (*domain.Order, error) {
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) headerResult(ret mock.Arguments) (*domain.OrderHeader, error) {
	var r0 *domain.OrderHeader
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderHeader)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (int, error) {
	ret := _m.Called(ctx, req)
	return ret.Int(0), ret.Error(1)
}

func (_m *OrderRepository) GetOrderWithItems(ctx context.Context, id int) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, id))
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.OrderHeader, error) {
	return _m.headerResult(_m.Called(ctx, id))
}

func (_m *OrderRepository) ListOrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []domain.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderItem)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListUserOrders(ctx context.Context, userID int) ([]domain.OrderHeader, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.OrderHeader
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderHeader)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string) (*domain.OrderHeader, error) {
	return _m.headerResult(_m.Called(ctx, id, status))
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
