package bns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const zonefileKeyPrefix = "stacks-indexer:zonefile:"

// RedisCache stores zonefiles in redis. Zonefiles are content addressed so
// entries never need invalidation, only expiry.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics CacheMetrics
}

// NewRedisCache connects to redis at addr and checks the connection.
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration, metrics CacheMetrics) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, ttl: ttl, metrics: metrics}, nil
}

// Get returns the cached zonefile for hash.
func (c *RedisCache) Get(ctx context.Context, hash string) (zonefile []byte, found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveCache("get", found, err, started)
	}()

	zonefile, err = c.client.Get(ctx, zonefileKeyPrefix+hash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get zonefile %s: %w", hash, err)
	}
	return zonefile, true, nil
}

// Set caches a zonefile.
func (c *RedisCache) Set(ctx context.Context, hash string, zonefile []byte) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveCache("set", false, err, started)
	}()

	if err = c.client.Set(ctx, zonefileKeyPrefix+hash, zonefile, c.ttl).Err(); err != nil {
		return fmt.Errorf("set zonefile %s: %w", hash, err)
	}
	return nil
}

// Close closes the redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
