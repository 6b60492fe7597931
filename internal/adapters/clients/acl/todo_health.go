package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "todo-api" matches the service name used
// by the underlying [httpclient.Client] for tracing and metrics.
func (c *TodoClient) Name() string {
	return "todo-api"
}

// HealthCheck reports the remote todo API's availability based on the
// circuit breaker state -- no network call is made.
//
// State mapping:
//   - "closed"    -- the remote API is operating normally; returns nil.
//   - "half-open" -- circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      -- the remote API is unavailable and the breaker is
//     rejecting requests; returns a descriptive error indicating failure.
//
// This reports remote status, not service readiness. The view API stays up
// and serves the last good snapshot while the remote API is failing.
func (c *TodoClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("todo-api: degraded (circuit breaker half-open)")
	case "open":
		return fmt.Errorf("todo-api: failing (circuit breaker open)")
	default:
		return fmt.Errorf("todo-api: unknown circuit breaker state %q", state)
	}
}
