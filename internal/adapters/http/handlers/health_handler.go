package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/platform/health"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	started  time.Time
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, started: time.Now()}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status: dto.HealthStatusOK,
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails. The "view" check reflects the last list refresh
// and the "todo-api" check the gateway circuit breaker.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ToReadinessResponse(results, health.Healthy(results))
	code := http.StatusOK
	if resp.Status != dto.HealthStatusReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
