package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
)

// panicDetail is the only text a client sees for a recovered panic.
const panicDetail = "the view request failed unexpectedly"

// Recovery returns middleware that turns a handler panic into a 500 problem
// response and an error log carrying the stack, the route template and the
// IDs set further down the chain. A panic after the headers went out is only
// logged. http.ErrAbortHandler is re-raised so net/http aborts the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				// RequestID and CorrelationID run inside this middleware, so
				// their values are read back from the response headers.
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("request_id", rw.Header().Get(httpclient.HeaderRequestID)),
					slog.String("correlation_id", rw.Header().Get(httpclient.HeaderCorrelationID)),
					slog.Bool("response_started", rw.headerWritten),
				)

				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, panicDetail)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
