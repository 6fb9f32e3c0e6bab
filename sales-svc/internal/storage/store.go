package storage

import (
	"context"
	"strconv"
	"time"

	"food-ordering/sales-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	fieldPlaced  = "orders_placed"
	fieldPaid    = "orders_paid"
	fieldFailed  = "payments_failed"
	fieldRevenue = "revenue_minor"
)

// Store keeps per-restaurant daily sales in Redis: one hash of counters per
// restaurant and day, and one sorted set per day ranking restaurants by
// revenue. Revenue is stored in minor units.
type Store struct {
	rdb      *redis.Client
	seenTTL  time.Duration
	statsTTL time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb:      rdb,
		seenTTL:  7 * 24 * time.Hour,
		statsTTL: 30 * 24 * time.Hour,
	}
}

func seenKey(eventID uuid.UUID) string {
	return "sales:seen:" + eventID.String()
}

func dailyKey(day string, restaurantID uuid.UUID) string {
	return "sales:daily:" + day + ":" + restaurantID.String()
}

func revenueKey(day string) string {
	return "sales:revenue:" + day
}

// MarkSeen reports whether this is the first time eventID is recorded.
func (s *Store) MarkSeen(ctx context.Context, eventID uuid.UUID) (bool, error) {
	return s.rdb.SetNX(ctx, seenKey(eventID), 1, s.seenTTL).Result()
}

func (s *Store) Forget(ctx context.Context, eventID uuid.UUID) error {
	return s.rdb.Del(ctx, seenKey(eventID)).Err()
}

func (s *Store) RecordPlaced(ctx context.Context, restaurantID uuid.UUID, day string) error {
	return s.record(ctx, restaurantID, day, fieldPlaced, 0)
}

func (s *Store) RecordPaid(ctx context.Context, restaurantID uuid.UUID, day string, amount decimal.Decimal) error {
	return s.record(ctx, restaurantID, day, fieldPaid, amount.Shift(2).Round(0).IntPart())
}

func (s *Store) RecordFailed(ctx context.Context, restaurantID uuid.UUID, day string) error {
	return s.record(ctx, restaurantID, day, fieldFailed, 0)
}

func (s *Store) record(ctx context.Context, restaurantID uuid.UUID, day, counter string, revenueMinor int64) error {
	key := dailyKey(day, restaurantID)
	board := revenueKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, counter, 1)
		pipe.HIncrBy(ctx, key, fieldRevenue, revenueMinor)
		pipe.Expire(ctx, key, s.statsTTL)
		pipe.ZIncrBy(ctx, board, float64(revenueMinor), restaurantID.String())
		pipe.Expire(ctx, board, s.statsTTL)
		return nil
	})
	return err
}

// RestaurantSales returns zero figures for a restaurant with no activity.
func (s *Store) RestaurantSales(ctx context.Context, restaurantID uuid.UUID, day string) (*domain.RestaurantSales, error) {
	fields, err := s.rdb.HGetAll(ctx, dailyKey(day, restaurantID)).Result()
	if err != nil {
		return nil, err
	}
	sales := fromHash(restaurantID, day, fields)
	return &sales, nil
}

// TopRestaurants ranks the day's restaurants by revenue, highest first.
func (s *Store) TopRestaurants(ctx context.Context, day string, limit int) ([]domain.RestaurantSales, error) {
	ranked, err := s.rdb.ZRevRange(ctx, revenueKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(ranked))
	for _, member := range ranked {
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, dailyKey(day, id))
	}
	if len(cmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	top := make([]domain.RestaurantSales, 0, len(ids))
	for i, id := range ids {
		top = append(top, fromHash(id, day, cmds[i].Val()))
	}
	return top, nil
}

func fromHash(restaurantID uuid.UUID, day string, fields map[string]string) domain.RestaurantSales {
	count := func(field string) int64 {
		n, _ := strconv.ParseInt(fields[field], 10, 64)
		return n
	}
	return domain.RestaurantSales{
		RestaurantID:   restaurantID,
		Date:           day,
		OrdersPlaced:   count(fieldPlaced),
		OrdersPaid:     count(fieldPaid),
		PaymentsFailed: count(fieldFailed),
		Revenue:        decimal.New(count(fieldRevenue), -2),
	}
}
