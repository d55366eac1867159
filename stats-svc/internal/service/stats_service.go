package service

import (
	"context"

	"takeaway/stats-svc/internal/domain"
)

const (
	DefaultTopLimit = 10
	maxTopLimit     = 100
)

type StatsService struct {
	store StoreInterface
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store}
}

// TopToday caps limit at 100.
func (s *StatsService) TopToday(ctx context.Context, limit int) ([]domain.RestaurantRank, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	return s.store.TopToday(ctx, limit)
}

func (s *StatsService) Restaurant(ctx context.Context, id int) (*domain.RestaurantStats, error) {
	return s.store.RestaurantStats(ctx, id)
}

var _ StatsServiceInterface = (*StatsService)(nil)
