package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/interfaces/rest"
	"github.com/google/uuid"
)

// RequestIDHeader carries the caller's request id, echoed on every response.
const RequestIDHeader = "X-Request-ID"

// Recovery turns a panic in an allocation request into a 500 envelope. The
// panic is logged with the request id so a failed batch can be traced back
// to the caller.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				reqLogger := logger.With("request_id", requestID)
				reqLogger.Error("allocation request panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"content_length", r.ContentLength,
					"stack", string(debug.Stack()),
				)

				err := application.NewInternalError(fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
				rest.WriteError(w, err, reqLogger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
