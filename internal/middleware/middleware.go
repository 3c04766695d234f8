package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	// CORS is nil when cross-origin requests are not served.
	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int
	// RateLimitExempt lists paths that bypass rate limiting.
	RateLimitExempt []string

	// WebhookPaths are tagged as provider deliveries in the access log.
	WebhookPaths []string

	RequestTimeout time.Duration
}

// Chain creates a middleware chain with all configured middleware. The returned
// limiter must be stopped on shutdown.
func Chain(config *Config) (func(http.Handler) http.Handler, *RateLimiter) {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst, config.RateLimitExempt...)

	return func(handler http.Handler) http.Handler {
		// Apply middleware in order (inner to outer)
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger, config.WebhookPaths...)(h)

		h = RequestID(h)

		return h
	}, rateLimiter
}
