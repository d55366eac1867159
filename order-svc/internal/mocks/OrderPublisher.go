package mocks

import (
	"context"

	"takeaway/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderPublisher is a mock type for the OrderPublisher type
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

// NewOrderPublisher creates a new instance of OrderPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
