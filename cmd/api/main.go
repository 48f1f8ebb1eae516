// ABOUTME: Main entry point for the headlines API server
// ABOUTME: Wires together storage, migrations, services and the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"headlines-app-api/api"
	"headlines-app-api/core/articlecache"
	"headlines-app-api/core/bookmarks"
	"headlines-app-api/core/interfaces"
	"headlines-app-api/core/migration"
	"headlines-app-api/core/reader"
	"headlines-app-api/infrastructure/fetcher/newsapi"
	"headlines-app-api/infrastructure/fetcher/rss"
	stdhttp "headlines-app-api/infrastructure/http/standard"
	logruslogger "headlines-app-api/infrastructure/logger/logrus"
	"headlines-app-api/infrastructure/storage/memory"
	redisstorage "headlines-app-api/infrastructure/storage/redis"
	"headlines-app-api/infrastructure/storage/sqlite"
	"headlines-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting headlines API", map[string]interface{}{
		"port":     cfg.Server.Port,
		"storage":  cfg.Storage.Type,
		"provider": cfg.Fetcher.Provider,
	})

	storage := buildStorage(cfg, logger)

	httpClient := stdhttp.NewClient(30*time.Second, 2)

	deps := interfaces.Dependencies{
		Storage:    storage,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	ctx := context.Background()

	// Migrations run before any component reads its keys. A failed
	// migration is fatal, running against a half-migrated store is not safe.
	runner := migration.NewRunner(deps, migration.DefaultSteps())
	version, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("Schema migration failed: %v", err)
	}
	logger.Info("Schema up to date", map[string]interface{}{
		"version": version,
	})

	bookmarkStore := bookmarks.NewStore(deps)
	if err := bookmarkStore.Initialize(ctx); err != nil {
		log.Fatalf("Bookmark store initialization failed: %v", err)
	}

	cacheManager := articlecache.NewManager(deps, cfg.Cache.MaxEntries)
	if err := cacheManager.Initialize(ctx); err != nil {
		log.Fatalf("Cache manager initialization failed: %v", err)
	}

	fetcher, err := buildFetcher(cfg, deps)
	if err != nil {
		log.Fatalf("Fetcher setup failed: %v", err)
	}

	readerService := reader.NewService(bookmarkStore, cacheManager, fetcher, logger, reader.Options{
		CacheTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		PageSize: cfg.Fetcher.PageSize,
	})

	server := api.NewServer(readerService, api.Config{
		Port:      cfg.Server.Port,
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	cacheManager.Teardown()
	bookmarkStore.Teardown()

	if closer, ok := storage.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("Storage close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// buildStorage selects the key-value backend from configuration.
// Redis falls back to memory when the server is unreachable, sqlite
// does not: a broken durable store should be fixed, not masked.
func buildStorage(cfg *config.Config, logger interfaces.Logger) interfaces.KeyValueStore {
	switch cfg.Storage.Type {
	case "redis":
		client, err := redisstorage.NewClient(cfg.Storage.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory", map[string]interface{}{
				"address": cfg.Storage.Redis.Address,
				"error":   err.Error(),
			})
			return memory.NewClient()
		}
		logger.Info("Using Redis storage", map[string]interface{}{
			"address": cfg.Storage.Redis.Address,
		})
		return client
	case "memory":
		logger.Info("Using in-memory storage", nil)
		return memory.NewClient()
	default:
		client, err := sqlite.NewClient(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store at %s: %v", cfg.Storage.SQLitePath, err)
		}
		logger.Info("Using SQLite storage", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
		return client
	}
}

// buildFetcher selects the article provider from configuration
func buildFetcher(cfg *config.Config, deps interfaces.Dependencies) (interfaces.ArticleFetcher, error) {
	switch cfg.Fetcher.Provider {
	case "rss":
		return rss.NewClient(deps.HTTPClient, cfg.Fetcher.RSSFeeds)
	default:
		return newsapi.NewClient(deps.HTTPClient, cfg.Fetcher.NewsAPI)
	}
}
