// ABOUTME: Tests for the per-client rate limiting middleware
// ABOUTME: Verifies burst enforcement and per-IP isolation

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Allow(t *testing.T) {
	cl := NewClientLimiter(1, 3)

	// Burst of 3 should be allowed
	assert.True(t, cl.Allow("127.0.0.1"))
	assert.True(t, cl.Allow("127.0.0.1"))
	assert.True(t, cl.Allow("127.0.0.1"))

	// 4th immediate request should be denied
	assert.False(t, cl.Allow("127.0.0.1"))

	// Different IP gets its own bucket
	assert.True(t, cl.Allow("192.168.1.1"))
}

func TestRateLimit_AllowsRequestsUnderLimit(t *testing.T) {
	limiter := NewClientLimiter(100, 5)
	middleware := RateLimit(limiter)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_Returns429ForExceededBurst(t *testing.T) {
	limiter := NewClientLimiter(1, 2)
	middleware := RateLimit(limiter)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "too_many_requests")
}

func TestRateLimit_IsolatesClientsByIP(t *testing.T) {
	limiter := NewClientLimiter(1, 1)
	middleware := RateLimit(limiter)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest("GET", "/test", nil)
	first.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same IP exhausted
	again := httptest.NewRequest("GET", "/test", nil)
	again.RemoteAddr = "127.0.0.1:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, again)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other IP unaffected
	other := httptest.NewRequest("GET", "/test", nil)
	other.RemoteAddr = "192.168.1.9:4321"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}
