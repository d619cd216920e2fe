package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging logs one line per request through the default slog logger:
// method, path, status, response size, duration and request ID when present.
// Server errors log at Error, client errors at Warn, everything else at Info.
func Logging() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			tw := track(w)

			next.ServeHTTP(tw, r)

			status := tw.status
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", tw.bytes),
				slog.Duration("duration", time.Since(start)),
			}

			if id := GetRequestID(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			level := slog.LevelInfo

			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			slog.LogAttrs(r.Context(), level, "http request", attrs...)
		})
	}
}
