// ABOUTME: Reader service reconciles cached and fetched articles with bookmarks
// ABOUTME: This is the API surface the UI/navigation layer talks to

package reader

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"headlines-app-api/core/articlecache"
	"headlines-app-api/core/bookmarks"
	"headlines-app-api/core/domain"
	"headlines-app-api/core/interfaces"
)

// Options tunes the reader service
type Options struct {
	// CacheTTL is the freshness window for cached article lists
	CacheTTL time.Duration

	// PageSize is requested from the fetcher
	PageSize int
}

// Service joins the cache manager, the bookmark store and the remote
// fetcher into the read/bookmark surface the UI consumes
type Service struct {
	bookmarks *bookmarks.Store
	cache     *articlecache.Manager
	fetcher   interfaces.ArticleFetcher
	logger    interfaces.Logger
	opts      Options
	now       func() time.Time
}

// NewService creates a reader service
func NewService(bookmarkStore *bookmarks.Store, cache *articlecache.Manager, fetcher interfaces.ArticleFetcher, logger interfaces.Logger, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 15 * time.Minute
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}

	return &Service{
		bookmarks: bookmarkStore,
		cache:     cache,
		fetcher:   fetcher,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// GetArticles returns the article list for a category, served from cache
// when a live entry exists and the caller did not force a refresh.
// When a fetch fails and any cached entry exists, stale included, the
// cached list is returned annotated rather than surfacing the error.
func (s *Service) GetArticles(ctx context.Context, category string, forceRefresh bool) (*domain.AnnotatedArticleList, error) {
	if category == "" {
		return nil, errors.New("category cannot be empty")
	}

	payload, createdAt, stale, cached := s.cache.Peek(category)
	if cached && !stale && !forceRefresh {
		// Cache hit, zero network calls. Touch stats through Get.
		if _, err := s.cache.Get(ctx, category); err != nil {
			s.logger.Debug("Cache stat touch missed", map[string]interface{}{
				"category": category,
			})
		}
		return s.annotate(payload, false, createdAt), nil
	}

	fetched, err := s.fetcher.FetchArticles(ctx, interfaces.FetchParams{
		Category: category,
		Page:     1,
		PageSize: s.opts.PageSize,
	})
	if err != nil {
		if cached {
			// Graceful degradation: serve the stale list instead of an error
			s.logger.Warn("Fetch failed, serving stale cache entry", map[string]interface{}{
				"category": category,
				"error":    err.Error(),
			})
			return s.annotate(payload, true, createdAt), nil
		}
		return nil, err
	}

	if raw, marshalErr := json.Marshal(fetched); marshalErr == nil {
		// Last write wins: a concurrent refresh for the same category
		// that completes later simply overwrites this entry
		if cacheErr := s.cache.Set(ctx, category, raw, s.opts.CacheTTL); cacheErr != nil {
			s.logger.Warn("Failed to cache fetched articles", map[string]interface{}{
				"category": category,
				"error":    cacheErr.Error(),
			})
		}
	}

	return s.annotateArticles(fetched, false, s.now()), nil
}

// ToggleBookmark flips the bookmark state for an article id and returns
// the new state
func (s *Service) ToggleBookmark(ctx context.Context, articleID string) (bool, error) {
	if articleID == "" {
		return false, errors.New("article id cannot be empty")
	}

	if s.bookmarks.Contains(articleID) {
		if _, err := s.bookmarks.Remove(ctx, articleID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := s.bookmarks.Add(ctx, articleID); err != nil {
		return false, err
	}
	return true, nil
}

// ListBookmarked returns the bookmarked articles in bookmark order.
// Article bodies are reconstructed from cached lists, stale ones
// included; ids no longer present in any cache entry come back as
// id-only placeholders so the UI can still render and unbookmark them.
func (s *Service) ListBookmarked(ctx context.Context) (*domain.AnnotatedArticleList, error) {
	ids := s.bookmarks.All()

	byID := make(map[string]domain.Article)
	for _, key := range s.cache.Keys() {
		payload, _, _, ok := s.cache.Peek(key)
		if !ok {
			continue
		}

		var articles []domain.Article
		if err := json.Unmarshal(payload, &articles); err != nil {
			continue
		}

		for _, article := range articles {
			if _, seen := byID[article.ID]; !seen {
				byID[article.ID] = article
			}
		}
	}

	annotated := make([]domain.AnnotatedArticle, 0, len(ids))
	for _, id := range ids {
		article, ok := byID[id]
		if !ok {
			article = domain.Article{ID: id}
		}
		annotated = append(annotated, domain.AnnotatedArticle{
			Article:      article,
			IsBookmarked: true,
		})
	}

	return &domain.AnnotatedArticleList{
		Articles:  annotated,
		FetchedAt: s.now(),
	}, nil
}

// ClearBookmarks empties the bookmark set
func (s *Service) ClearBookmarks(ctx context.Context) error {
	return s.bookmarks.Clear(ctx)
}

// annotate decodes a cached payload and joins it with the bookmark set
func (s *Service) annotate(payload json.RawMessage, stale bool, fetchedAt time.Time) *domain.AnnotatedArticleList {
	var articles []domain.Article
	if err := json.Unmarshal(payload, &articles); err != nil {
		s.logger.Warn("Cached article payload unreadable", map[string]interface{}{
			"error": err.Error(),
		})
		articles = nil
	}
	return s.annotateArticles(articles, stale, fetchedAt)
}

// annotateArticles joins articles with the bookmark set at read time.
// The join happens on every read and is never persisted, so bookmark
// changes show up without invalidating the article cache.
func (s *Service) annotateArticles(articles []domain.Article, stale bool, fetchedAt time.Time) *domain.AnnotatedArticleList {
	annotated := make([]domain.AnnotatedArticle, 0, len(articles))
	for _, article := range articles {
		annotated = append(annotated, domain.AnnotatedArticle{
			Article:      article,
			IsBookmarked: s.bookmarks.Contains(article.ID),
		})
	}

	return &domain.AnnotatedArticleList{
		Articles:  annotated,
		Stale:     stale,
		FetchedAt: fetchedAt,
	}
}
