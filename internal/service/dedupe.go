package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisDeduplicator struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *CircuitBreaker
}

// NewRedisDeduplicator keeps delivery keys in Redis for ttl. Calls go through
// breaker so a Redis outage fails fast.
func NewRedisDeduplicator(client *redis.Client, ttl time.Duration, breaker *CircuitBreaker) Deduplicator {
	return &redisDeduplicator{
		client:  client,
		ttl:     ttl,
		breaker: breaker,
	}
}

func (d *redisDeduplicator) MarkDelivered(ctx context.Context, key string) (bool, error) {
	var first bool
	err := d.breaker.Execute(ctx, func() error {
		ok, err := d.client.SetNX(ctx, key, time.Now().Unix(), d.ttl).Result()
		first = ok
		return err
	})
	if err != nil {
		return false, err
	}
	return first, nil
}

func (d *redisDeduplicator) Forget(ctx context.Context, key string) error {
	return d.breaker.Execute(ctx, func() error {
		return d.client.Del(ctx, key).Err()
	})
}
