// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Implements per-IP token bucket limits with idle client cleanup

package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientState tracks the limiter for a single client IP
type clientState struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter enforces a per-client request rate
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientState
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

// NewClientLimiter creates a limiter allowing perSecond requests with the
// given burst per client. Idle clients are dropped after a few minutes.
func NewClientLimiter(perSecond int, burst int) *ClientLimiter {
	cl := &ClientLimiter{
		clients: make(map[string]*clientState),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		idleTTL: 3 * time.Minute,
	}

	go cl.cleanup()

	return cl
}

// cleanup removes idle client entries periodically
func (cl *ClientLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		now := time.Now()
		for key, c := range cl.clients {
			if now.Sub(c.lastSeen) > cl.idleTTL {
				delete(cl.clients, key)
			}
		}
		cl.mu.Unlock()
	}
}

// Allow reports whether a request from the given key may proceed
func (cl *ClientLimiter) Allow(key string) bool {
	cl.mu.Lock()
	c, exists := cl.clients[key]
	if !exists {
		c = &clientState{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[key] = c
	}
	c.lastSeen = time.Now()
	cl.mu.Unlock()

	return c.limiter.Allow()
}

// RateLimit creates a middleware that enforces the client limiter
func RateLimit(limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)

			if !limiter.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%g", float64(limiter.limit)))
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"too_many_requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%g", float64(limiter.limit)))

			next.ServeHTTP(w, r)
		})
	}
}
