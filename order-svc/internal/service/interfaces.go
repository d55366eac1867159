package service

import (
	"context"

	"takeaway/order-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	FindUserByCredentials(ctx context.Context, phone, password string) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, req domain.UpdateProfileRequest) (*domain.User, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (int, error)
	GetOrderWithItems(ctx context.Context, id int) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.OrderHeader, error)
	ListOrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	ListUserOrders(ctx context.Context, userID int) ([]domain.OrderHeader, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (*domain.OrderHeader, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
}

type DishServiceInterface interface {
	Create(ctx context.Context, dish *domain.Dish) error
	List(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	Get(ctx context.Context, id int) (*domain.Dish, error)
}

type UserServiceInterface interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, id int, req domain.UpdateProfileRequest) (*domain.User, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]domain.OrderHeader, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.OrderHeader, error)
	QRCode(ctx context.Context, id int) ([]byte, error)
}
