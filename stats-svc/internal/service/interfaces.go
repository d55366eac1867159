package service

import (
	"context"

	"takeaway/stats-svc/internal/domain"
	"takeaway/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrderCreated(ctx context.Context, evt domain.OrderEvent) error
	RecordStatusChange(ctx context.Context, evt domain.OrderEvent) error
	TopToday(ctx context.Context, limit int) ([]domain.RestaurantRank, error)
	RestaurantStats(ctx context.Context, id int) (*domain.RestaurantStats, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, evt domain.OrderEvent) error
}

type StatsServiceInterface interface {
	TopToday(ctx context.Context, limit int) ([]domain.RestaurantRank, error)
	Restaurant(ctx context.Context, id int) (*domain.RestaurantStats, error)
}

var _ StoreInterface = (*storage.Store)(nil)
