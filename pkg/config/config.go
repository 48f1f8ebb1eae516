// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, cache and fetcher settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains key-value store configuration
	Storage StorageConfig

	// Cache contains article cache configuration
	Cache CacheConfig

	// Fetcher contains remote article provider configuration
	Fetcher FetcherConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is requests per second allowed per client, 0 disables
	RateLimit int

	// RateBurst is the per-client burst size
	RateBurst int

	// LogLevel sets the logger verbosity (debug/info/warn/error)
	LogLevel string
}

// StorageConfig holds key-value store backend configuration
type StorageConfig struct {
	// Type specifies the backend (sqlite/redis/memory)
	Type string

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// CacheConfig holds article cache configuration
type CacheConfig struct {
	// TTLSeconds is the freshness window for cached article lists
	TTLSeconds int

	// MaxEntries caps the number of cache entries held
	MaxEntries int
}

// FetcherConfig holds remote provider configuration
type FetcherConfig struct {
	// Provider specifies the article source (newsapi/rss)
	Provider string

	// PageSize is the number of articles requested per fetch
	PageSize int

	// NewsAPI contains NewsAPI-specific configuration
	NewsAPI NewsAPIConfig

	// RSSFeeds maps category names to feed URLs for the rss provider,
	// parsed from "category=url,category=url"
	RSSFeeds map[string]string
}

// NewsAPIConfig holds NewsAPI-specific configuration
type NewsAPIConfig struct {
	// BaseURL is the API endpoint
	BaseURL string

	// APIKey authenticates requests
	APIKey string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
			LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Type:       getEnvOrDefault("STORAGE_TYPE", "sqlite"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "headlines.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Cache: CacheConfig{
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 900),
			MaxEntries: getEnvAsIntOrDefault("CACHE_MAX_ENTRIES", 50),
		},
		Fetcher: FetcherConfig{
			Provider: getEnvOrDefault("FETCH_PROVIDER", "newsapi"),
			PageSize: getEnvAsIntOrDefault("FETCH_PAGE_SIZE", 20),
			NewsAPI: NewsAPIConfig{
				BaseURL: getEnvOrDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2"),
				APIKey:  getEnvOrDefault("NEWSAPI_KEY", ""),
			},
			RSSFeeds: parseFeedMap(os.Getenv("RSS_FEEDS")),
		},
	}

	return cfg, nil
}

// parseFeedMap parses "tech=https://a.example/feed,science=https://b.example/feed"
func parseFeedMap(raw string) map[string]string {
	feeds := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		feeds[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return feeds
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite storage")
		}
	case "redis":
		if c.Storage.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis storage")
		}
	case "memory":
	default:
		return errors.New("storage type must be 'sqlite', 'redis' or 'memory'")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if c.Cache.MaxEntries < 1 {
		return errors.New("cache max entries must be at least 1")
	}

	switch c.Fetcher.Provider {
	case "newsapi":
		if c.Fetcher.NewsAPI.BaseURL == "" {
			return errors.New("newsapi base URL cannot be empty")
		}
	case "rss":
		if len(c.Fetcher.RSSFeeds) == 0 {
			return errors.New("rss provider needs at least one feed in RSS_FEEDS")
		}
	default:
		return errors.New("fetch provider must be 'newsapi' or 'rss'")
	}

	return nil
}
