package mocks

import (
	"context"

	"takeaway/stats-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrderCreated(ctx context.Context, evt domain.OrderEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordStatusChange(ctx context.Context, evt domain.OrderEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *StoreInterface) TopToday(ctx context.Context, limit int) ([]domain.RestaurantRank, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.RestaurantRank
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RestaurantRank)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) RestaurantStats(ctx context.Context, id int) (*domain.RestaurantStats, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.RestaurantStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RestaurantStats)
	}
	return r0, ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
