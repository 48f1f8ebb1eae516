// ABOUTME: ArticleFetcher implementation against a NewsAPI-style JSON endpoint
// ABOUTME: Maps provider responses to domain articles with URL-canonical ids

package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"headlines-app-api/core/domain"
	coreerrors "headlines-app-api/core/errors"
	"headlines-app-api/core/interfaces"
	"headlines-app-api/pkg/config"
)

// Client implements the ArticleFetcher interface over a NewsAPI-style API
type Client struct {
	httpClient interfaces.HTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a NewsAPI fetcher
func NewClient(httpClient interfaces.HTTPClient, cfg config.NewsAPIConfig) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("HTTP client cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}, nil
}

// apiArticle is the provider's wire shape for one article
type apiArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// apiResponse is the provider's wire shape for one result page
type apiResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

// FetchArticles retrieves one page of articles for a category or query
func (c *Client) FetchArticles(ctx context.Context, params interfaces.FetchParams) ([]domain.Article, error) {
	requestURL, request := c.buildURL(params)

	resp, err := c.httpClient.Get(ctx, requestURL)
	if err != nil {
		return nil, &coreerrors.FetchError{Request: request, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.FetchError{Request: request, StatusCode: resp.StatusCode()}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.FetchError{Request: request, Err: err}
	}

	var parsed apiResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, &coreerrors.FetchError{Request: request, Err: fmt.Errorf("parsing response: %w", err)}
	}

	if parsed.Status != "ok" {
		return nil, &coreerrors.FetchError{Request: request, Err: fmt.Errorf("provider status %q: %s", parsed.Status, parsed.Message)}
	}

	articles := make([]domain.Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		articles = append(articles, c.toDomain(a))
	}

	return articles, nil
}

// buildURL assembles the provider request URL and a loggable label for it
func (c *Client) buildURL(params interfaces.FetchParams) (string, string) {
	query := url.Values{}

	var endpoint, request string
	if params.Category != "" {
		endpoint = c.baseURL + "/top-headlines"
		query.Set("category", params.Category)
		request = params.Category
	} else {
		endpoint = c.baseURL + "/everything"
		query.Set("q", params.Query)
		request = params.Query
	}

	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.PageSize > 0 {
		query.Set("pageSize", fmt.Sprintf("%d", params.PageSize))
	}
	if c.apiKey != "" {
		query.Set("apiKey", c.apiKey)
	}

	return endpoint + "?" + query.Encode(), request
}

// toDomain converts a wire article to the domain model
func (c *Client) toDomain(a apiArticle) domain.Article {
	publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	return domain.Article{
		ID:          domain.ArticleID(a.URL),
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		ImageURL:    a.URLToImage,
		PublishedAt: publishedAt,
		Source: domain.Source{
			ID:   a.Source.ID,
			Name: a.Source.Name,
		},
	}
}
