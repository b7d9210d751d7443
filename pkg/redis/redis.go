package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
)

// Client wraps go-redis. It backs the auth endpoint rate limiter.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── rate limiting ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit counts a hit against key in a fixed window and reports
// whether the caller is still within limit. The window starts at the first hit.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := rateLimitPrefix + key

	n, err := c.rdb.Incr(ctx, fullKey).Result()
	if err != nil {
		c.logger.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, fullKey, window).Err(); err != nil {
			c.logger.Warn("rate limit expire failed", zap.String("key", key), zap.Error(err))
			return false, err
		}
	}

	return n <= int64(limit), nil
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
