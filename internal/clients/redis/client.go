package redis

import (
	"context"
	"fmt"
	"time"

	"outreach-server/internal/config"
	"outreach-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. Returns a nil client when Redis is disabled;
// every method of a nil client reports that it is not initialized.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	if !cfg.Enabled {
		logger.Info(ctx, "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "successfully connected to Redis")
	return &Client{
		client: client,
		logger: logger,
	}, nil
}

var errNotInitialized = fmt.Errorf("Redis client not initialized")

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ReplaceSet atomically replaces the members of a set and sets its expiration
func (c *Client) ReplaceSet(ctx context.Context, key string, members []string, expiration time.Duration) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(args) > 0 {
			pipe.SAdd(ctx, key, args...)
		}
		pipe.Expire(ctx, key, expiration)
		return nil
	})
	return err
}

// SMembers returns all members of a set
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	if c == nil || c.client == nil {
		return nil, errNotInitialized
	}
	return c.client.SMembers(ctx, key).Result()
}

// Exists checks if a key exists
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, errNotInitialized
	}
	return c.client.Exists(ctx, keys...).Result()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
