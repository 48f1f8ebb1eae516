// Package core contains the business logic for the headlines API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Article, Source, AnnotatedArticle)
// - envelope: Versioned serialization wrapper for persisted blobs
// - migration: Ordered schema migrations over the key-value store
// - bookmarks: Persistent bookmark store with an in-memory mirror
// - articlecache: TTL article cache with bounded size and eviction
// - reader: Reconciles cached and fetched articles with bookmarks
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (storage, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "headlines-app-api/core/bookmarks"
//	    "headlines-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Storage:    myStorage,    // implements interfaces.KeyValueStore
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create and load the bookmark store
//	store := bookmarks.NewStore(deps)
//	if err := store.Initialize(ctx); err != nil {
//	    // Handle error
//	}
//
//	added, err := store.Add(ctx, articleID)
package core
