package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pipeline-backend/pkg/api"
)

// Timeout bounds each request with a deadline. Analysis completes in
// microseconds; this guards against slow request bodies, not slow work.
func Timeout(timeout time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			done := make(chan struct{})

			go func() {
				defer func() {
					if err := recover(); err != nil {
						logger.Error("panic in timed handler",
							zap.Any("panic", err),
							zap.String("requestID", GetRequestIDFromRequest(r)))
					}
				}()
				next.ServeHTTP(w, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				logger.Warn("request timed out",
					zap.String("path", r.URL.Path),
					zap.String("requestID", GetRequestIDFromRequest(r)))
				if w.Header().Get("Content-Type") == "" {
					api.Error(w, http.StatusRequestTimeout, "Request timeout")
				}
			}
		})
	}
}
