package domain

import (
	"testing"
	"time"
)

func TestArticleID_SameURLSameID(t *testing.T) {
	id1 := ArticleID("https://example.com/news/story-1")
	id2 := ArticleID("https://example.com/news/story-1")

	if id1 != id2 {
		t.Errorf("same URL produced different IDs: %s vs %s", id1, id2)
	}
}

func TestArticleID_CanonicalEquivalents(t *testing.T) {
	base := ArticleID("https://example.com/news/story-1")

	equivalents := []string{
		"HTTPS://EXAMPLE.COM/news/story-1",
		"https://example.com:443/news/story-1",
		"https://example.com/news/story-1/",
		"https://example.com/news/story-1#comments",
		"  https://example.com/news/story-1  ",
	}

	for _, u := range equivalents {
		if got := ArticleID(u); got != base {
			t.Errorf("ArticleID(%q) = %s, want %s", u, got, base)
		}
	}
}

func TestArticleID_DifferentURLsDiffer(t *testing.T) {
	id1 := ArticleID("https://example.com/news/story-1")
	id2 := ArticleID("https://example.com/news/story-2")

	if id1 == id2 {
		t.Error("different URLs produced the same ID")
	}
}

func TestArticleID_QueryParamsPreserved(t *testing.T) {
	id1 := ArticleID("https://example.com/news?id=1")
	id2 := ArticleID("https://example.com/news?id=2")

	if id1 == id2 {
		t.Error("URLs differing only by query produced the same ID")
	}
}

func TestNewArticle_DerivesID(t *testing.T) {
	article, err := NewArticle("Title", "Desc", "https://example.com/a", "", time.Now(), Source{Name: "Example"})

	if err != nil {
		t.Fatalf("NewArticle returned error: %v", err)
	}

	if article.ID != ArticleID("https://example.com/a") {
		t.Error("NewArticle did not derive ID from URL")
	}
}

func TestNewArticle_RequiresTitle(t *testing.T) {
	_, err := NewArticle("", "Desc", "https://example.com/a", "", time.Now(), Source{Name: "Example"})

	if err == nil {
		t.Error("NewArticle should return error for empty title")
	}
}

func TestNewArticle_RequiresURL(t *testing.T) {
	_, err := NewArticle("Title", "Desc", "", "", time.Now(), Source{Name: "Example"})

	if err == nil {
		t.Error("NewArticle should return error for empty URL")
	}
}
