// ABOUTME: In-memory key-value store built on patrickmn/go-cache
// ABOUTME: Used for tests and as a throwaway backend in development

package memory

import (
	"context"
	"errors"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"headlines-app-api/core/interfaces"
)

// Client implements the KeyValueStore interface in memory.
// Values never expire; lifecycle is owned by the core, not the store.
type Client struct {
	cache *gocache.Cache
}

// NewClient creates an empty in-memory store
func NewClient() *Client {
	return &Client{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// GetString retrieves the value stored under key
func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return "", interfaces.ErrKeyNotFound
	}

	s, ok := value.(string)
	if !ok {
		return "", errors.New("stored value is not a string")
	}

	return s, nil
}

// SetString stores value under key
func (c *Client) SetString(ctx context.Context, key string, value string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Set(key, value, gocache.NoExpiration)
	return nil
}

// RemoveKey deletes key
func (c *Client) RemoveKey(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// ListKeys returns all keys starting with prefix
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	items := c.cache.Items()
	keys := make([]string, 0, len(items))
	for key := range items {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}
