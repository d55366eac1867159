package domain

import (
	"errors"
	"time"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the message order-svc publishes on the orders topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type RestaurantRank struct {
	RestaurantID int   `json:"restaurant_id"`
	Orders       int64 `json:"orders"`
}

type RestaurantStats struct {
	RestaurantID int              `json:"restaurant_id"`
	Orders       int64            `json:"orders"`
	Revenue      float64          `json:"revenue"`
	Statuses     map[string]int64 `json:"statuses"`
}

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
