package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ds611b/practicas/internal/config"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// New returns nil when redis.addr is empty; callers treat a nil client as "redis disabled".
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// Hit counts one request against key inside a fixed window and reports the running count
// and the time left in the window.
func Hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate counter %s: %w", key, err)
	}

	left := ttl.Val()
	if left < 0 {
		left = window
	}
	return incr.Val(), left, nil
}

// RegisterOpenTelemetryPlugin traces every redis command. Call it after the tracer provider is set.
func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return redisotel.InstrumentTracing(rdb)
}
