package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
)

// WithCorrelationID stores id for logging and for the X-Correlation-ID
// header on calls to the remote todo API.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	return httpclient.CorrelationIDFromContext(ctx)
}

// CorrelationID returns middleware that reuses the incoming X-Correlation-ID
// or falls back to the request ID, so it must run after RequestID. Values
// longer than the request ID limit are replaced the same way. The ID is
// echoed as a response header.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderCorrelationID)
			if id == "" || len(id) > maxRequestIDLength {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(httpclient.HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
