package middleware

import (
	"context"
	"net/http"
	"time"
)

const timeoutBody = `{"success":false,"error":{"code":"TIMEOUT","message":"Request timeout"}}`

// Timeout bounds the request context and answers 503 with the error envelope
// when the handler does not finish in time.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			http.TimeoutHandler(next, timeout, timeoutBody).ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
