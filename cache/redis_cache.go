package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// envelope wraps a cached payload with its expiration policy so the sliding
// renewal on hits can never outlive the ceiling set at write time.
type envelope struct {
	Deadline time.Time       `json:"deadline"`
	Sliding  time.Duration   `json:"sliding"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisCache implements Cache on a Redis client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new RedisCache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Unreadable entry: drop it and report a miss.
		zap.L().Warn("Dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return nil, ErrMiss
	}

	remaining := time.Until(env.Deadline)
	if remaining <= 0 {
		_ = c.client.Del(ctx, key).Err()
		return nil, ErrMiss
	}

	sliding := env.Sliding
	if sliding <= 0 {
		sliding = DefaultOptions().Sliding
	}

	// Renew the sliding window, capped by the absolute deadline.
	if ttl := minDuration(sliding, remaining); ttl > 0 {
		if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
			zap.L().Warn("Failed to renew cache entry", zap.String("key", key), zap.Error(err))
		}
	}

	return []byte(env.Payload), nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, opts Options) error {
	if opts.Absolute <= 0 {
		opts.Absolute = DefaultOptions().Absolute
	}
	if opts.Sliding <= 0 {
		opts.Sliding = DefaultOptions().Sliding
	}

	env := envelope{
		Deadline: time.Now().Add(opts.Absolute),
		Sliding:  opts.Sliding,
		Payload:  json.RawMessage(value),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}

	ttl := minDuration(opts.Sliding, opts.Absolute)
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache remove %q: %w", key, err)
	}
	return nil
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
