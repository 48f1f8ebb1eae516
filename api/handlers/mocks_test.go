// ABOUTME: Test doubles for the api handlers package
// ABOUTME: Provides a function-field reader mock and article fixtures

package handlers

import (
	"context"
	"time"

	"headlines-app-api/core/domain"
)

type mockReader struct {
	GetArticlesFunc    func(ctx context.Context, category string, forceRefresh bool) (*domain.AnnotatedArticleList, error)
	ToggleBookmarkFunc func(ctx context.Context, articleID string) (bool, error)
	ListBookmarkedFunc func(ctx context.Context) (*domain.AnnotatedArticleList, error)
	ClearBookmarksFunc func(ctx context.Context) error
}

func (m *mockReader) GetArticles(ctx context.Context, category string, forceRefresh bool) (*domain.AnnotatedArticleList, error) {
	return m.GetArticlesFunc(ctx, category, forceRefresh)
}

func (m *mockReader) ToggleBookmark(ctx context.Context, articleID string) (bool, error) {
	return m.ToggleBookmarkFunc(ctx, articleID)
}

func (m *mockReader) ListBookmarked(ctx context.Context) (*domain.AnnotatedArticleList, error) {
	return m.ListBookmarkedFunc(ctx)
}

func (m *mockReader) ClearBookmarks(ctx context.Context) error {
	return m.ClearBookmarksFunc(ctx)
}

func annotatedList(titles ...string) *domain.AnnotatedArticleList {
	list := &domain.AnnotatedArticleList{
		Articles:  make([]domain.AnnotatedArticle, 0, len(titles)),
		FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, title := range titles {
		url := "https://news.example.com/" + title
		list.Articles = append(list.Articles, domain.AnnotatedArticle{
			Article: domain.Article{
				ID:          domain.ArticleID(url),
				Title:       title,
				URL:         url,
				PublishedAt: list.FetchedAt,
				Source:      domain.Source{Name: "Example News"},
			},
		})
	}
	return list
}
