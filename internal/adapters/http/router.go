// Package http provides the inbound HTTP adapter: the view API routes and
// the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	viewHandler *handlers.ViewHandler,
	todoHandler *handlers.TodoHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/view", func(r chi.Router) {
			r.Get("/", viewHandler.GetView)
			r.Post("/refresh", viewHandler.Refresh)
			r.Patch("/filters", viewHandler.SetFilters)
			r.Put("/sort", viewHandler.SetSort)
			r.Post("/sort/toggle", viewHandler.ToggleSort)
			r.Put("/page", viewHandler.SetPage)
			r.Put("/page-size", viewHandler.SetPageSize)
			r.Post("/todos/{id}/status", viewHandler.SetTodoStatus)
		})

		r.Get("/metrics", viewHandler.GetMetrics)

		// Writes refresh the shared view before responding.
		r.Post("/todos", todoHandler.CreateTodo)
		r.Put("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)

		r.Get("/notifications", notificationHandler.ListNotifications)
	})

	return r
}
