package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tubemap.nanjingmetro.org/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	middleware := NewRequestLoggingMiddleware(logger)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/api/metro/station/99-99.json?key=TEST", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/metro/station/99-99.json", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Contains(t, entry, "duration_ms")
}

func TestRequestLoggingMiddlewarePropagatesLoggerInContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var sawLogger bool
	middleware := NewRequestLoggingMiddleware(logger)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logging.FromContext(r.Context()) != nil
	}))

	req := httptest.NewRequest("GET", "/api/metro/lines.json", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, sawLogger)
}
