package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"takeaway/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyTTL     = 7 * 24 * time.Hour
	statusPrefix = "status:"
)

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

// Days are bucketed in UTC.
func dailyKey(day time.Time) string {
	return "stats:daily:" + day.UTC().Format("2006-01-02")
}

func restaurantKey(id int) string {
	return fmt.Sprintf("stats:restaurant:%d", id)
}

// RecordOrderCreated bumps the restaurant's daily rank and its lifetime
// counters in one MULTI block.
func (s *Store) RecordOrderCreated(ctx context.Context, evt domain.OrderEvent) error {
	day := evt.Timestamp
	if day.IsZero() {
		day = s.now()
	}
	daily := dailyKey(day)
	hash := restaurantKey(evt.RestaurantID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, daily, 1, strconv.Itoa(evt.RestaurantID))
		pipe.Expire(ctx, daily, dailyTTL)
		pipe.HIncrBy(ctx, hash, "orders", 1)
		pipe.HIncrByFloat(ctx, hash, "revenue", evt.TotalPrice)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record order %d: %w", evt.OrderID, err)
	}
	return nil
}

func (s *Store) RecordStatusChange(ctx context.Context, evt domain.OrderEvent) error {
	if err := s.rdb.HIncrBy(ctx, restaurantKey(evt.RestaurantID), statusPrefix+evt.Status, 1).Err(); err != nil {
		return fmt.Errorf("record status of order %d: %w", evt.OrderID, err)
	}
	return nil
}

// TopToday lists today's restaurants by order count, highest first.
func (s *Store) TopToday(ctx context.Context, limit int) ([]domain.RestaurantRank, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(s.now()), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read daily ranking: %w", err)
	}

	ranks := make([]domain.RestaurantRank, 0, len(result))
	for _, z := range result {
		member, _ := z.Member.(string)
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ranks = append(ranks, domain.RestaurantRank{RestaurantID: id, Orders: int64(z.Score)})
	}
	return ranks, nil
}

func (s *Store) RestaurantStats(ctx context.Context, id int) (*domain.RestaurantStats, error) {
	fields, err := s.rdb.HGetAll(ctx, restaurantKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("read restaurant %d stats: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("restaurant stats %w", domain.ErrNotFound)
	}

	stats := &domain.RestaurantStats{RestaurantID: id, Statuses: map[string]int64{}}
	for field, value := range fields {
		switch {
		case field == "orders":
			stats.Orders, _ = strconv.ParseInt(value, 10, 64)
		case field == "revenue":
			stats.Revenue, _ = strconv.ParseFloat(value, 64)
		case strings.HasPrefix(field, statusPrefix):
			n, _ := strconv.ParseInt(value, 10, 64)
			stats.Statuses[strings.TrimPrefix(field, statusPrefix)] = n
		}
	}
	return stats, nil
}
