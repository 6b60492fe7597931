package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
)

// healthPathPrefix marks health endpoints, which are logged at debug only.
const healthPathPrefix = "/health/"

// Logging returns middleware that logs request start and completion events.
// It stores a child logger carrying the request and correlation IDs via
// logging.WithLogger for downstream use. Completion is logged at warn for
// 4xx and error for 5xx responses; health checks stay at debug.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)
			health := strings.HasPrefix(r.URL.Path, healthPathPrefix)

			startLevel := slog.LevelInfo
			if health {
				startLevel = slog.LevelDebug
			}
			child.Log(ctx, startLevel, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				logHeaders(ctx, child, r.Header)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(rw.statusCode, health), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	attrs := RedactHeaders(h)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.DebugContext(ctx, "request headers", args...)
}

func completionLevel(status int, health bool) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case health:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// routePattern returns the matched chi route, or the raw path when the
// request did not go through a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
