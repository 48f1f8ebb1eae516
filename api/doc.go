// ABOUTME: Package documentation for the HTTP API layer
// ABOUTME: Describes routing, middleware, and response conventions

// Package api provides the HTTP front end over the reader service.
//
// Routing uses gorilla/mux with all endpoints under /api/v1, plus a
// /health liveness endpoint at the root. CORS is handled by rs/cors
// and applies to the whole router.
//
// Middleware, in order:
//   - Request logging with a generated X-Request-ID per request
//   - Per-client rate limiting backed by golang.org/x/time/rate
//
// Errors are returned as a JSON object with "error" (a stable machine
// label) and "message" (human-readable detail). Upstream provider
// failures map to 502/503 so clients can distinguish them from local
// storage faults, which map to 500.
package api
