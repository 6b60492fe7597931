package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
)

// maxRequestIDLength bounds client supplied IDs before they reach logs and
// outbound headers.
const maxRequestIDLength = 128

// WithRequestID stores id so that logs and calls to the remote todo API
// carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	return httpclient.RequestIDFromContext(ctx)
}

// RequestID returns middleware that reuses the incoming X-Request-ID header
// or generates a random UUID. The ID is stored in the request context and
// echoed as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderRequestID)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}
