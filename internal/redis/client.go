package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lab_dashboard/internal/tracking"

	"github.com/go-redis/redis/v8"
)

const summaryPrefix = "summary:"

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SetSummary caches a computed dashboard summary for one scope.
func (c *Client) SetSummary(key string, summary *tracking.Summary, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return c.rdb.Set(ctx, summaryPrefix+key, jsonData, ttl).Err()
}

// GetSummary returns the cached summary for a scope, or nil on a miss.
func (c *Client) GetSummary(key string) (*tracking.Summary, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, summaryPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	var summary tracking.Summary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}

// InvalidateSummaries drops every cached summary after an order write.
func (c *Client) InvalidateSummaries() error {
	ctx := context.Background()
	keys, err := c.rdb.Keys(ctx, summaryPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list summary keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
