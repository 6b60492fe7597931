package dto

// Health status values.
const (
	HealthStatusOK       = "ok"
	HealthStatusReady    = "ready"
	HealthStatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse maps per-checker results to a readiness body. Healthy
// checkers report "ok", failing ones their error message.
func ToReadinessResponse(results map[string]error, healthy bool) HealthResponse {
	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
		} else {
			checks[name] = HealthStatusOK
		}
	}

	status := HealthStatusReady
	if !healthy {
		status = HealthStatusNotReady
	}
	return HealthResponse{Status: status, Checks: checks}
}
