// ABOUTME: HTTP server wiring for the headlines API
// ABOUTME: Configures routing, CORS, and request middleware

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"headlines-app-api/api/handlers"
	"headlines-app-api/api/middleware"
	"headlines-app-api/core/interfaces"
)

// Config holds configuration for the API server
type Config struct {
	// Port is the listen port, without a colon
	Port string

	// Logger receives request logs, nil disables request logging
	Logger interfaces.Logger

	// RateLimit is requests per second allowed per client, 0 disables
	RateLimit int

	// RateBurst is the per-client burst size
	RateBurst int
}

// Server is the HTTP front end over the reader service
type Server struct {
	httpServer *http.Server
	logger     interfaces.Logger
}

// NewServer builds the router, middleware chain and handlers
func NewServer(reader handlers.ArticleReader, cfg Config) *Server {
	router := mux.NewRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		limiter := middleware.NewClientLimiter(cfg.RateLimit, burst)
		router.Use(middleware.RateLimit(limiter))
	}

	router.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	handlers.NewArticlesHandler(reader).RegisterRoutes(v1)
	handlers.NewBookmarksHandler(reader).RegisterRoutes(v1)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(router)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      corsHandler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: cfg.Logger,
	}
}

// Handler exposes the full middleware chain, used by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	if s.logger != nil {
		s.logger.Info("HTTP server listening", map[string]interface{}{
			"addr": s.httpServer.Addr,
		})
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
