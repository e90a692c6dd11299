package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig controls response compression behavior.
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes before compression kicks in.
	MinSize int
	// Level is the gzip compression level (1=fastest, 9=best).
	Level int
}

// DefaultCompressionConfig returns the compression settings used in production.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
	}
}

// NewCompressionMiddleware builds gzip middleware with the given config.
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	if err != nil {
		// Invalid config; fall back to gzhttp defaults
		return func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		}
	}

	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}
}

// CompressionMiddleware wraps a handler with gzip compression using the
// default config.
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
