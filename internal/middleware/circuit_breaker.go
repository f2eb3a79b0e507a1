package middleware

import (
	"net/http"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"pipeline-backend/internal/config"
	"pipeline-backend/pkg/api"
)

// CircuitBreaker sheds inbound load once the failure ratio crosses the
// configured threshold. A 5xx response counts as a failure.
func CircuitBreaker(cfg config.CircuitBreakerConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "http",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("name", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := cb.Execute(func() (any, error) {
				ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
				next.ServeHTTP(ww, r)
				if ww.status >= 500 {
					return nil, http.ErrAbortHandler
				}
				return nil, nil
			})
			if err == nil {
				return
			}

			switch err {
			case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
				logger.Warn("circuit breaker rejected request",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				api.Error(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
			default:
				// The handler already wrote its 5xx; nothing to add.
			}
		})
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
