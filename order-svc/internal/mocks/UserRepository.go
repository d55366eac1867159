package mocks

import (
	"context"

	"takeaway/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) userResult(ret mock.Arguments) (*domain.User, error) {
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) CreateUser(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	return _m.userResult(_m.Called(ctx, req))
}

func (_m *UserRepository) FindUserByCredentials(ctx context.Context, phone, password string) (*domain.User, error) {
	return _m.userResult(_m.Called(ctx, phone, password))
}

func (_m *UserRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return _m.userResult(_m.Called(ctx, id))
}

func (_m *UserRepository) UpdateUser(ctx context.Context, id int, req domain.UpdateProfileRequest) (*domain.User, error) {
	return _m.userResult(_m.Called(ctx, id, req))
}

// NewUserRepository creates a new instance of UserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
