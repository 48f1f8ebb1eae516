// ABOUTME: Article domain model represents a single news article from any provider
// ABOUTME: Provides URL-canonical identity so the same story maps to the same ID

package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
	"time"
)

// Source identifies the outlet an article came from
type Source struct {
	// ID is the provider's identifier for the outlet, may be empty
	ID string `json:"id,omitempty"`

	// Name is the human-readable outlet name
	Name string `json:"name"`
}

// Article represents a single news article
type Article struct {
	// ID is the stable identifier, derived from the canonical URL
	ID string `json:"id"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is the article summary, may be empty
	Description string `json:"description,omitempty"`

	// URL is the link to the full article
	URL string `json:"url"`

	// ImageURL is the lead image, may be empty
	ImageURL string `json:"imageUrl,omitempty"`

	// PublishedAt is when the article was published
	PublishedAt time.Time `json:"publishedAt"`

	// Source is the outlet the article came from
	Source Source `json:"source"`
}

// ArticleID derives the stable identifier for an article URL.
// Two URLs that canonicalize to the same form yield the same ID.
func ArticleID(rawURL string) string {
	canonical := canonicalizeURL(rawURL)
	sum := sha1.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// canonicalizeURL normalizes scheme and host casing, strips fragments,
// default ports and trailing slashes so equivalent links compare equal
func canonicalizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// Not a parseable absolute URL; hash the trimmed input as-is
		return trimmed
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if u.Scheme == "http" {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	}
	if u.Scheme == "https" {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// NewArticle creates an Article with its ID derived from the URL
func NewArticle(title, description, articleURL, imageURL string, publishedAt time.Time, source Source) (*Article, error) {
	article := &Article{
		ID:          ArticleID(articleURL),
		Title:       title,
		Description: description,
		URL:         articleURL,
		ImageURL:    imageURL,
		PublishedAt: publishedAt,
		Source:      source,
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

// Validate checks that the article has the required fields
func (a *Article) Validate() error {
	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}

	if a.URL == "" {
		return errors.New("article URL cannot be empty")
	}

	if _, err := url.Parse(a.URL); err != nil {
		return errors.New("article URL is not valid format")
	}

	return nil
}
