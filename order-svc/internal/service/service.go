package service

import (
	"context"

	"takeaway/order-svc/internal/domain"
)

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish) error {
	return s.repo.CreateDish(ctx, dish)
}

func (s *DishService) List(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

func (s *DishService) Get(ctx context.Context, id int) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, id)
}

var _ DishServiceInterface = (*DishService)(nil)
