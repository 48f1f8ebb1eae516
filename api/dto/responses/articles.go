// ABOUTME: Response DTOs for article and bookmark API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import (
	"time"

	"headlines-app-api/core/domain"
)

// SourceResponse represents an article source in API responses
type SourceResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ArticleResponse represents a single article in API responses
type ArticleResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	URL          string         `json:"url"`
	ImageURL     string         `json:"imageUrl,omitempty"`
	PublishedAt  time.Time      `json:"publishedAt"`
	Source       SourceResponse `json:"source"`
	IsBookmarked bool           `json:"isBookmarked"`
}

// ArticleListResponse represents the response for an article read
type ArticleListResponse struct {
	Articles  []ArticleResponse `json:"articles"`
	Count     int               `json:"count"`
	Stale     bool              `json:"stale"`
	FetchedAt time.Time         `json:"fetchedAt"`
}

// ToggleBookmarkResponse represents the result of a bookmark toggle
type ToggleBookmarkResponse struct {
	ID           string `json:"id"`
	IsBookmarked bool   `json:"isBookmarked"`
}

// ErrorResponse represents an error returned to API consumers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}

// NewArticleResponse maps an annotated domain article to its response shape
func NewArticleResponse(a domain.AnnotatedArticle) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		Source: SourceResponse{
			ID:   a.Source.ID,
			Name: a.Source.Name,
		},
		IsBookmarked: a.IsBookmarked,
	}
}

// NewArticleListResponse maps an annotated article list to its response shape
func NewArticleListResponse(list *domain.AnnotatedArticleList) ArticleListResponse {
	articles := make([]ArticleResponse, 0, len(list.Articles))
	for _, a := range list.Articles {
		articles = append(articles, NewArticleResponse(a))
	}
	return ArticleListResponse{
		Articles:  articles,
		Count:     len(articles),
		Stale:     list.Stale,
		FetchedAt: list.FetchedAt,
	}
}
