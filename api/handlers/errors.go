// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"headlines-app-api/api/dto/responses"
	"headlines-app-api/core/errors"
)

// writeJSON serializes v to the response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError converts a domain error to an HTTP error response
func writeError(w http.ResponseWriter, err error) {
	status, label := statusForError(err)
	writeJSON(w, status, responses.ErrorResponse{
		Error:   label,
		Message: err.Error(),
	})
}

// statusForError maps domain error types to HTTP status codes
func statusForError(err error) (int, string) {
	if errors.IsFetch(err) {
		if fetchErr, ok := err.(*errors.FetchError); ok {
			// Map upstream provider status codes to our API status codes
			switch {
			case fetchErr.StatusCode >= 500:
				return http.StatusBadGateway, "upstream_error"
			case fetchErr.StatusCode == http.StatusTooManyRequests:
				return http.StatusTooManyRequests, "upstream_rate_limited"
			case fetchErr.StatusCode >= 400:
				return http.StatusBadGateway, "upstream_request_error"
			default:
				return http.StatusServiceUnavailable, "upstream_unavailable"
			}
		}
		return http.StatusServiceUnavailable, "upstream_unavailable"
	}

	if errors.IsCorruptData(err) {
		return http.StatusInternalServerError, "corrupt_data"
	}

	if errors.IsStorageRead(err) || errors.IsStorageWrite(err) {
		return http.StatusInternalServerError, "storage_error"
	}

	return http.StatusInternalServerError, "internal_error"
}

// writeBadRequest responds with a 400 and the given message
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
