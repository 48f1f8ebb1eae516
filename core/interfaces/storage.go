// ABOUTME: KeyValueStore is the persistence primitive the whole core builds on
// ABOUTME: Implementations can be SQLite, Redis, or in-memory storage

// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by GetString when no value is stored under a key.
var ErrKeyNotFound = errors.New("storage: key not found")

// KeyValueStore defines the interface for the crash-safe string store that
// backs bookmarks, cache entries and migration state.
//
// Example usage:
//
//	value, err := store.GetString(ctx, "bookmarks.v2")
//	if errors.Is(err, interfaces.ErrKeyNotFound) {
//		// no bookmarks saved yet
//	}
type KeyValueStore interface {
	// GetString returns the value stored under key.
	// Returns ErrKeyNotFound when the key is absent.
	GetString(ctx context.Context, key string) (string, error)

	// SetString stores value under key, replacing any previous value.
	SetString(ctx context.Context, key string, value string) error

	// RemoveKey deletes key. Removing an absent key is not an error.
	RemoveKey(ctx context.Context, key string) error

	// ListKeys returns all keys starting with prefix, used for sweep
	// and migration discovery. An empty prefix returns every key.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
