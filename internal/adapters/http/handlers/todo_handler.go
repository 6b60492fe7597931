package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// TodoHandler handles HTTP requests for todo create, update and delete. The
// writes go through the view service so the shared view is refreshed.
type TodoHandler struct {
	view ports.ViewService
	now  func() time.Time
}

// NewTodoHandler creates a new TodoHandler with the given view service.
func NewTodoHandler(view ports.ViewService) *TodoHandler {
	return &TodoHandler{view: view, now: time.Now}
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.view.CreateTodo(r.Context(), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created, h.now()))
}

// UpdateTodo handles PUT /api/v1/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.view.UpdateTodo(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated, h.now()))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.view.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
