// ABOUTME: Annotated article models carry the per-read bookmark join result
// ABOUTME: These are the immutable snapshots handed to the UI layer

package domain

import "time"

// AnnotatedArticle is an Article joined with its bookmark state at read time
type AnnotatedArticle struct {
	Article

	// IsBookmarked reflects the bookmark store at the moment of the read
	IsBookmarked bool `json:"isBookmarked"`
}

// AnnotatedArticleList is the result of an article read
type AnnotatedArticleList struct {
	// Articles are the annotated articles, in provider order
	Articles []AnnotatedArticle `json:"articles"`

	// Stale is true when the list came from an expired cache entry
	// served because a fresh fetch failed
	Stale bool `json:"stale"`

	// FetchedAt is when the underlying article list was fetched
	FetchedAt time.Time `json:"fetchedAt"`
}
