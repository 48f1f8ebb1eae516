// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as key-value storage, HTTP communication, article fetching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: Durable key-value store backed by a SQLite table
// - storage/redis: Redis-based key-value store
// - storage/memory: In-memory store for tests and ephemeral deployments
// - http/standard: Standard library HTTP client with retry logic
// - fetcher/newsapi: Article provider backed by the NewsAPI REST service
// - fetcher/rss: Article provider backed by RSS/Atom feeds
// - logger/logrus: Structured logger backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Storage Implementations
//
// SQLite Example:
//
//	store, err := sqlite.NewClient("headlines.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//	err = store.SetString(ctx, "key", "value")
//	value, err := store.GetString(ctx, "key")
//
// Redis Example:
//
//	store, err := redis.NewClient(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewClient(30*time.Second, 2)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Fetching articles", map[string]interface{}{
//	    "category": "technology",
//	    "provider": "newsapi",
//	})
package infrastructure
