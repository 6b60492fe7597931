// Package main is the entry point for the view API server. It wires all
// dependencies using samber/do v2, loads the first page of todos, serves the
// HTTP view API and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-view/internal/adapters/http"
	"github.com/jsamuelsen11/todo-view/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-view/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todo-view/internal/bootstrap"
	"github.com/jsamuelsen11/todo-view/internal/platform/config"
	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	initialLoadTimeout  = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := bootstrap.InitTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := bootstrap.NewInjector(cfg, logger, otel.Metrics)
	registerHTTP(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// The view starts with the first page loaded. A failure here is already
	// recorded in the view state and notified, so the server still starts.
	view := do.MustInvoke[ports.ViewService](injector)
	loadCtx, loadCancel := context.WithTimeout(ctx, initialLoadTimeout)
	if err := view.RefreshTodos(loadCtx); err != nil {
		logger.Warn("initial todo load failed", slog.Any("error", err))
	}
	loadCancel()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", server.Addr(), err)
	}

	// Run returns once the signal context is cancelled and in-flight
	// requests have drained.
	if err := server.Run(sigCtx, ln); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.ViewHandler, error) {
		return handlers.NewViewHandler(do.MustInvoke[ports.ViewService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.ViewService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.NotificationHandler, error) {
		return handlers.NewNotificationHandler(do.MustInvoke[ports.NotificationFeed](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.ViewHandler](i),
			do.MustInvoke[*handlers.TodoHandler](i),
			do.MustInvoke[*handlers.NotificationHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
