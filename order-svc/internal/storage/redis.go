package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisMarkers records one-shot side effects, such as a sent confirmation,
// so they are attempted at most once per payment.
type RedisMarkers struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMarkers(client *redis.Client, ttl time.Duration) *RedisMarkers {
	return &RedisMarkers{Client: client, TTL: ttl}
}

func (c *RedisMarkers) NotificationKey(paymentID uuid.UUID) string {
	return "notify:payment:" + paymentID.String()
}

// Claim sets key only if it is absent and reports whether this call set it.
func (c *RedisMarkers) Claim(ctx context.Context, key string) (bool, error) {
	return c.Client.SetNX(ctx, key, "1", c.TTL).Result()
}
