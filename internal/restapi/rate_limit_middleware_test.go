package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRateLimitMiddleware(t *testing.T) {
	middleware := NewRateLimitMiddleware(10, time.Second)
	assert.NotNil(t, middleware, "Middleware should not be nil")
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limitedHandler := middleware(handler)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code,
			"Request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(3, time.Second)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limitedHandler := middleware(handler)

	// First 3 requests should succeed
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code,
			"Request %d should be allowed", i+1)
	}

	// 4th request should be rate limited
	req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
	w := httptest.NewRecorder()

	limitedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code,
		"Request over limit should be blocked")
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_PerAPIKeyLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limitedHandler := middleware(handler)

	// Use up the limit for the first key
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/test?key=api-key-1", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code,
			"API key 1 request %d should be allowed", i+1)
	}

	req := httptest.NewRequest("GET", "/test?key=api-key-1", nil)
	w := httptest.NewRecorder()

	limitedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code,
		"API key 1 should be rate limited")

	// A different key has a separate limit
	req = httptest.NewRequest("GET", "/test?key=api-key-2", nil)
	w = httptest.NewRecorder()

	limitedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code,
		"API key 2 should not be affected")
}

func TestRateLimitMiddleware_NegativeRateDisablesLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(-1, time.Second)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limitedHandler := middleware(handler)

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/test?key=unmetered", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}
