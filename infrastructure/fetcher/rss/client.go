// ABOUTME: ArticleFetcher implementation over category-mapped RSS feeds
// ABOUTME: Fetches the feed for a category and converts items to domain articles

package rss

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mmcdole/gofeed"

	"headlines-app-api/core/domain"
	coreerrors "headlines-app-api/core/errors"
	"headlines-app-api/core/interfaces"
)

// Client implements the ArticleFetcher interface over RSS/Atom feeds
type Client struct {
	httpClient interfaces.HTTPClient
	feeds      map[string]string
}

// NewClient creates an RSS fetcher over a category -> feed URL map
func NewClient(httpClient interfaces.HTTPClient, feeds map[string]string) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("HTTP client cannot be nil")
	}

	if len(feeds) == 0 {
		return nil, errors.New("at least one feed must be configured")
	}

	return &Client{
		httpClient: httpClient,
		feeds:      feeds,
	}, nil
}

// FetchArticles retrieves the feed mapped to the requested category.
// Page and PageSize window the parsed items; RSS has no server-side paging.
func (c *Client) FetchArticles(ctx context.Context, params interfaces.FetchParams) ([]domain.Article, error) {
	category := params.Category
	if category == "" {
		return nil, errors.New("rss fetcher requires a category")
	}

	feedURL, ok := c.feeds[category]
	if !ok {
		return nil, &coreerrors.FetchError{
			Request: category,
			Err:     fmt.Errorf("no feed configured for category %q", category),
		}
	}

	resp, err := c.httpClient.Get(ctx, feedURL)
	if err != nil {
		return nil, &coreerrors.FetchError{Request: category, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.FetchError{Request: category, StatusCode: resp.StatusCode()}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.FetchError{Request: category, Err: err}
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, &coreerrors.FetchError{Request: category, Err: fmt.Errorf("parsing feed: %w", err)}
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		articles = append(articles, convertItem(item, feed))
	}

	return window(articles, params.Page, params.PageSize), nil
}

// convertItem maps one feed item to the domain model
func convertItem(item *gofeed.Item, feed *gofeed.Feed) domain.Article {
	article := domain.Article{
		ID:          domain.ArticleID(item.Link),
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		Source: domain.Source{
			Name: feed.Title,
		},
	}

	if item.PublishedParsed != nil {
		article.PublishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		article.PublishedAt = *item.UpdatedParsed
	}

	if item.Image != nil {
		article.ImageURL = item.Image.URL
	} else if len(item.Enclosures) > 0 {
		article.ImageURL = item.Enclosures[0].URL
	}

	return article
}

// window applies client-side paging over the parsed items
func window(articles []domain.Article, page, pageSize int) []domain.Article {
	if pageSize <= 0 {
		return articles
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(articles) {
		return []domain.Article{}
	}

	end := start + pageSize
	if end > len(articles) {
		end = len(articles)
	}

	return articles[start:end]
}
