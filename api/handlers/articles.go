// ABOUTME: Article handlers for the HTTP API
// ABOUTME: Serves cached-or-fresh article lists per category

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"headlines-app-api/api/dto/responses"
	"headlines-app-api/core/domain"
)

// ArticleReader is the subset of the reader service the API depends on
type ArticleReader interface {
	GetArticles(ctx context.Context, category string, forceRefresh bool) (*domain.AnnotatedArticleList, error)
	ToggleBookmark(ctx context.Context, articleID string) (bool, error)
	ListBookmarked(ctx context.Context) (*domain.AnnotatedArticleList, error)
	ClearBookmarks(ctx context.Context) error
}

// ArticlesHandler handles article read requests
type ArticlesHandler struct {
	reader ArticleReader
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(reader ArticleReader) *ArticlesHandler {
	return &ArticlesHandler{reader: reader}
}

// RegisterRoutes registers article routes on the given router
func (h *ArticlesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/articles/{category}", h.GetArticles).Methods(http.MethodGet)
}

// GetArticles returns the article list for a category.
// Passing ?refresh=1 bypasses the cache and forces a fetch.
func (h *ArticlesHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(mux.Vars(r)["category"])
	if category == "" {
		writeBadRequest(w, "category is required")
		return
	}

	refresh := r.URL.Query().Get("refresh") == "1"

	list, err := h.reader.GetArticles(r.Context(), category, refresh)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.NewArticleListResponse(list))
}
