package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest"
)

// Recovery turns a handler panic into a 500 error response and logs it with
// the request ID assigned by Logging. A panic after the handler has started
// writing only gets logged since the status line is already sent.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					"request_id", requestIDOf(w, r),
					"method", r.Method,
					"path", r.URL.Path,
					"status", rec.status,
					"bytes", rec.bytes,
					"panic", v,
					"stack", string(debug.Stack()),
				)

				if rec.status != 0 {
					return
				}
				rest.WriteError(w, application.NewInternalError(fmt.Errorf("panic: %v", v)), logger)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

func requestIDOf(w http.ResponseWriter, r *http.Request) string {
	if id := w.Header().Get(RequestIDHeader); id != "" {
		return id
	}
	return r.Header.Get(RequestIDHeader)
}
