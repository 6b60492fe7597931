package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// ViewHandler exposes the shared view state. Every mutating endpoint runs
// the matching controller operation, which refreshes the list before it
// returns, and responds with the resulting view.
type ViewHandler struct {
	view ports.ViewService
	now  func() time.Time
}

// NewViewHandler creates a new ViewHandler backed by the given view service.
func NewViewHandler(view ports.ViewService) *ViewHandler {
	return &ViewHandler{view: view, now: time.Now}
}

// GetView handles GET /api/v1/view.
func (h *ViewHandler) GetView(w http.ResponseWriter, _ *http.Request) {
	h.writeView(w)
}

// Refresh handles POST /api/v1/view/refresh.
func (h *ViewHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.view.RefreshTodos(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// SetFilters handles PATCH /api/v1/view/filters.
func (h *ViewHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.view.SetFilters(r.Context(), patch); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// SetSort handles PUT /api/v1/view/sort.
func (h *ViewHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req dto.SortRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.view.SetSort(r.Context(), req.Value()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// ToggleSort handles POST /api/v1/view/sort/toggle.
func (h *ViewHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleSortRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.view.ToggleSort(r.Context(), req.SortField()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// SetPage handles PUT /api/v1/view/page.
func (h *ViewHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.view.SetPage(r.Context(), *req.Page); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// SetPageSize handles PUT /api/v1/view/page-size.
func (h *ViewHandler) SetPageSize(w http.ResponseWriter, r *http.Request) {
	var req dto.PageSizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.view.SetPageSize(r.Context(), *req.PageSize); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// SetTodoStatus handles POST /api/v1/view/todos/{id}/status.
func (h *ViewHandler) SetTodoStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.view.ToggleTodoStatus(r.Context(), id, *req.Done); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.writeView(w)
}

// GetMetrics handles GET /api/v1/metrics.
func (h *ViewHandler) GetMetrics(w http.ResponseWriter, _ *http.Request) {
	s := h.view.Snapshot()
	writeJSON(w, http.StatusOK, dto.ToMetricsResponse(&s))
}

func (h *ViewHandler) writeView(w http.ResponseWriter) {
	s := h.view.Snapshot()
	writeJSON(w, http.StatusOK, dto.ToViewResponse(&s, h.now()))
}
