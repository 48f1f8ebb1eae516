// ABOUTME: Redis-backed key-value store using the go-redis client
// ABOUTME: Values persist without TTL; expiry is the cache manager's concern

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"headlines-app-api/core/interfaces"
	"headlines-app-api/pkg/config"
)

// Client implements the KeyValueStore interface using Redis
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis and verifies the connection
func NewClient(cfg config.RedisConfig) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{client: rdb}, nil
}

// GetString retrieves the value stored under key
func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", interfaces.ErrKeyNotFound
		}
		return "", err
	}

	return value, nil
}

// SetString stores value under key with no expiration
func (c *Client) SetString(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

// RemoveKey deletes key; removing an absent key is not an error
func (c *Client) RemoveKey(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// ListKeys returns all keys starting with prefix, scanning incrementally
// so large keyspaces don't block the server
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}
