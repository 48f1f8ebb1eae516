// ABOUTME: ArticleFetcher abstracts the remote news provider
// ABOUTME: The core treats it as an opaque fetch(params) -> articles | error

package interfaces

import (
	"context"

	"headlines-app-api/core/domain"
)

// FetchParams describes one article-list request
type FetchParams struct {
	// Category is the news category to fetch (e.g. "tech")
	Category string

	// Query is a free-text search, used when Category is empty
	Query string

	// Page is the 1-based result page
	Page int

	// PageSize is the number of articles per page
	PageSize int
}

// ArticleFetcher defines the interface for remote article providers.
// Implementations are expected to enforce their own timeouts; the
// reconciliation layer treats a timeout like any other fetch failure.
type ArticleFetcher interface {
	// FetchArticles retrieves one page of articles for the given params.
	FetchArticles(ctx context.Context, params FetchParams) ([]domain.Article, error)
}
