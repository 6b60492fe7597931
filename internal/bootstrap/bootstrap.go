// Package bootstrap wires the object graph shared by every composition root:
// the remote API client, the metrics calculator, the notification feed, the
// single view-state controller and the health registry.
package bootstrap

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-view/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-view/internal/adapters/notify"
	"github.com/jsamuelsen11/todo-view/internal/app/metrics"
	"github.com/jsamuelsen11/todo-view/internal/app/viewstate"
	"github.com/jsamuelsen11/todo-view/internal/platform/config"
	"github.com/jsamuelsen11/todo-view/internal/platform/health"
	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-view/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// remoteServiceName labels outbound spans and client metrics.
const remoteServiceName = "todo-api"

// NewInjector returns a root scope with the core graph registered. metrics
// may be nil when telemetry is disabled. Composition roots add their own
// presentation providers on top.
func NewInjector(cfg *config.Config, logger *slog.Logger, m *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, m)

	do.Provide(injector, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, remoteServiceName, m, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TodoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoClient(client, cfg.Client.BasePath, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		return do.MustInvoke[*acl.TodoClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MetricsCalculator, error) {
		client := do.MustInvoke[ports.TodoClient](i)
		return metrics.NewCalculator(client,
			cfg.View.MetricsPageSize,
			cfg.View.MetricsWorkers,
			m,
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*notify.Feed, error) {
		return notify.NewFeed(cfg.View.NotificationCapacity, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NotificationFeed, error) {
		return do.MustInvoke[*notify.Feed](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*viewstate.Controller, error) {
		return viewstate.NewController(
			do.MustInvoke[ports.TodoClient](i),
			do.MustInvoke[ports.MetricsCalculator](i),
			do.MustInvoke[*notify.Feed](i),
			cfg.View.DefaultPageSize,
			logger,
			viewstate.WithTelemetry(m),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ViewService, error) {
		return do.MustInvoke[*viewstate.Controller](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*acl.TodoClient](i))
		registry.Register(do.MustInvoke[*viewstate.Controller](i))
		return registry, nil
	})

	return injector
}
