// ABOUTME: Bookmark handlers for the HTTP API
// ABOUTME: Lists, toggles and clears the user's bookmarked articles

package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"headlines-app-api/api/dto/responses"
)

// BookmarksHandler handles bookmark requests
type BookmarksHandler struct {
	reader ArticleReader
}

// NewBookmarksHandler creates a new bookmarks handler
func NewBookmarksHandler(reader ArticleReader) *BookmarksHandler {
	return &BookmarksHandler{reader: reader}
}

// RegisterRoutes registers bookmark routes on the given router
func (h *BookmarksHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/bookmarks", h.ListBookmarks).Methods(http.MethodGet)
	router.HandleFunc("/bookmarks", h.ClearBookmarks).Methods(http.MethodDelete)
	router.HandleFunc("/bookmarks/{id}/toggle", h.ToggleBookmark).Methods(http.MethodPost)
}

// ListBookmarks returns all bookmarked articles in bookmark order
func (h *BookmarksHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	list, err := h.reader.ListBookmarked(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.NewArticleListResponse(list))
}

// ToggleBookmark flips the bookmark state of an article and returns the new state
func (h *BookmarksHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		writeBadRequest(w, "article id is required")
		return
	}

	bookmarked, err := h.reader.ToggleBookmark(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.ToggleBookmarkResponse{
		ID:           id,
		IsBookmarked: bookmarked,
	})
}

// ClearBookmarks removes every bookmark
func (h *BookmarksHandler) ClearBookmarks(w http.ResponseWriter, r *http.Request) {
	if err := h.reader.ClearBookmarks(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
