package service

import (
	"context"
	"errors"
	"strings"

	"takeaway/order-svc/internal/domain"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		return nil, domain.ErrInvalidUser
	}
	return s.repo.CreateUser(ctx, req)
}

// Login issues no token; the caller keeps the returned profile as its session.
func (s *UserService) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	user, err := s.repo.FindUserByCredentials(ctx, req.Phone, req.Password)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int, req domain.UpdateProfileRequest) (*domain.User, error) {
	return s.repo.UpdateUser(ctx, id, req)
}

var _ UserServiceInterface = (*UserService)(nil)
