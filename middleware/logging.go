package middleware

import (
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/jackielii/pageroute"
)

// Logging writes one structured line per request.
func Logging(logger *slog.Logger) pageroute.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler, route *pageroute.Route) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			level := slog.LevelInfo
			if m.Code >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", route.Name,
				"status", m.Code,
				"bytes", m.Written,
				"duration", m.Duration,
			}
			if id := RequestIDFrom(r.Context()); id != "" {
				attrs = append(attrs, "request_id", id)
			} else if id := w.Header().Get(RequestIDHeader); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			logger.Log(r.Context(), level, "request", attrs...)
		})
	}
}
