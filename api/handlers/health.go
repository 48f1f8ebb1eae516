// ABOUTME: Health check handler for the HTTP API
// ABOUTME: Reports process liveness for load balancers and monitors

package handlers

import (
	"net/http"

	"headlines-app-api/api/dto/responses"
)

// Health responds with a liveness payload
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}
