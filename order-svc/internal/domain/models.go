package domain

import "time"

// Restaurant keeps the camelCase wire names the client app already consumes.
type Restaurant struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Sales        int      `json:"sales"`
	DeliveryTime string   `json:"deliveryTime"`
	DeliveryFee  float64  `json:"deliveryFee"`
	MinPrice     float64  `json:"minPrice"`
	Distance     string   `json:"distance"`
	Tags         []string `json:"tags"`
	Address      string   `json:"address"`
}

type Dish struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// User is the public profile. The password column is never loaded into it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
}

// OrderHeader is one checkout without its line items. User order lists
// return headers only.
type OrderHeader struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	RestaurantID   int       `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Order is the detail view. Items is always present, empty when the order has none.
type Order struct {
	OrderHeader
	Items []OrderItem `json:"items"`
}

// OrderItem snapshots the dish name and price at checkout time.
type OrderItem struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	DishID    int       `json:"dish_id"`
	DishName  string    `json:"dish_name"`
	DishPrice float64   `json:"dish_price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateOrderRequest struct {
	UserID         int        `json:"userId"`
	RestaurantID   int        `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Items          []CartItem `json:"items"`
	TotalPrice     float64    `json:"totalPrice"`
	Address        string     `json:"address"`
	Phone          string     `json:"phone"`
}

type CartItem struct {
	Dish     CartDish `json:"dish"`
	Quantity int      `json:"quantity"`
}

type CartDish struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}
