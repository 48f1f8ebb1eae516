// ABOUTME: SQLite-backed key-value store for durable local persistence
// ABOUTME: The default backend; a file-based store that survives restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"headlines-app-api/core/interfaces"
)

// Client implements the KeyValueStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewClient opens (or creates) the store at filePath
func NewClient(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "headlines.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Single writer; the core serializes writes per component anyway
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the kv table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// GetString retrieves the value stored under key
func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	var value string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", interfaces.ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// SetString stores value under key, replacing any previous value
func (c *Client) SetString(ctx context.Context, key string, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := c.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// RemoveKey deletes key; removing an absent key is not an error
func (c *Client) RemoveKey(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// ListKeys returns all keys starting with prefix
func (c *Client) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns store statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_keys"] = count

	var pageCount, pageSize int
	if err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRow("PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
