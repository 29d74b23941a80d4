package middleware

import (
	"net/http"

	"github.com/ricirt/k8s-lab-demo/internal/ratelimiter"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func RateLimit(l *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
