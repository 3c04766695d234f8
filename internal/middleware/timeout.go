package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Timeout cancels the request context after timeout. Handlers that honour the
// context return early and the client gets 504. A zero timeout disables it.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	if timeout <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return chimw.Timeout(timeout)
}
