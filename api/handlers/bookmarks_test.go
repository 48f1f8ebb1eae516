// ABOUTME: Tests for the bookmark endpoints
// ABOUTME: Verifies list, toggle, and clear behavior over HTTP

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"headlines-app-api/api/dto/responses"
	"headlines-app-api/core/domain"
	"headlines-app-api/core/errors"
)

func newBookmarksRouter(reader ArticleReader) *mux.Router {
	router := mux.NewRouter()
	NewBookmarksHandler(reader).RegisterRoutes(router)
	return router
}

func TestListBookmarks_ReturnsBookmarkedArticles(t *testing.T) {
	reader := &mockReader{
		ListBookmarkedFunc: func(ctx context.Context) (*domain.AnnotatedArticleList, error) {
			list := annotatedList("saved")
			list.Articles[0].IsBookmarked = true
			return list, nil
		},
	}

	req := httptest.NewRequest("GET", "/bookmarks", nil)
	rec := httptest.NewRecorder()

	newBookmarksRouter(reader).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body responses.ArticleListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.True(t, body.Articles[0].IsBookmarked)
}

func TestToggleBookmark_ReturnsNewState(t *testing.T) {
	var gotID string
	reader := &mockReader{
		ToggleBookmarkFunc: func(ctx context.Context, articleID string) (bool, error) {
			gotID = articleID
			return true, nil
		},
	}

	req := httptest.NewRequest("POST", "/bookmarks/abc123/toggle", nil)
	rec := httptest.NewRecorder()

	newBookmarksRouter(reader).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", gotID)

	var body responses.ToggleBookmarkResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body.ID)
	assert.True(t, body.IsBookmarked)
}

func TestToggleBookmark_MapsStorageErrorTo500(t *testing.T) {
	reader := &mockReader{
		ToggleBookmarkFunc: func(ctx context.Context, articleID string) (bool, error) {
			return false, &errors.StorageWriteError{Key: "bookmarks.v2", Err: context.DeadlineExceeded}
		},
	}

	req := httptest.NewRequest("POST", "/bookmarks/abc123/toggle", nil)
	rec := httptest.NewRecorder()

	newBookmarksRouter(reader).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body responses.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "storage_error", body.Error)
}

func TestClearBookmarks_ReturnsNoContent(t *testing.T) {
	cleared := false
	reader := &mockReader{
		ClearBookmarksFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}

	req := httptest.NewRequest("DELETE", "/bookmarks", nil)
	rec := httptest.NewRecorder()

	newBookmarksRouter(reader).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, cleared)
}
