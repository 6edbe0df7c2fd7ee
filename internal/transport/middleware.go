package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/abcstark/team-wellbeing/internal/metrics"
	"github.com/go-chi/chi/v5/middleware"
)

// OperationObserver records request outcomes.
type OperationObserver interface {
	Observe(ctx context.Context, transport, operation string, success bool, duration time.Duration)
}

// observe wraps a facade route so its duration and status reach the observer.
func (s *Server) observe(operation string, next http.HandlerFunc) http.HandlerFunc {
	if s.observer == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next(ww, r)
		s.observer.Observe(r.Context(), metrics.TransportHTTP, operation, ww.Status() < http.StatusBadRequest, time.Since(start))
	}
}

func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
