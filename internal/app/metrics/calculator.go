// Package metrics computes the completion-time snapshot over the complete,
// unfiltered set of todos held by the remote API.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-view/internal/app/fanout"
	"github.com/jsamuelsen11/todo-view/internal/domain"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// Default tuning used when the constructor receives non-positive values.
const (
	DefaultPageSize = 100
	DefaultWorkers  = 4
)

// MaxPages bounds how many pages one computation will request. A total
// that needs more is treated as a broken response from the remote API.
const MaxPages = 1000

// Compile-time check that Calculator implements ports.MetricsCalculator.
var _ ports.MetricsCalculator = (*Calculator)(nil)

// Calculator implements ports.MetricsCalculator. It reads page 0 to learn
// the total, then fetches the remaining pages concurrently and reduces the
// whole dataset with todo.ComputeMetrics.
type Calculator struct {
	client   ports.TodoClient
	pageSize int
	workers  int
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewCalculator creates a Calculator. metrics may be nil.
func NewCalculator(client ports.TodoClient, pageSize, workers int, metrics *telemetry.Metrics, logger *slog.Logger) *Calculator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Calculator{
		client:   client,
		pageSize: pageSize,
		workers:  workers,
		metrics:  metrics,
		logger:   logging.OrDiscard(logger),
	}
}

// Compute fetches every todo and returns the derived snapshot. Any page
// failure fails the whole computation.
func (c *Calculator) Compute(ctx context.Context) (todo.Metrics, error) {
	start := time.Now()

	todos, err := c.fetchAll(ctx)
	if err != nil {
		c.observe(ctx, time.Since(start), "error")
		c.logger.ErrorContext(ctx, "failed to fetch todos for metrics",
			slog.String("operation", "Compute"),
			slog.Any("error", err),
		)
		return todo.Metrics{}, err
	}

	m := todo.ComputeMetrics(todos)

	elapsed := time.Since(start)
	c.observe(ctx, elapsed, "success")
	c.logger.DebugContext(ctx, "metrics computed",
		slog.Int("todos", len(todos)),
		slog.Int64("average_minutes", m.AverageTime),
		slog.Duration("elapsed", elapsed),
	)
	return m, nil
}

func (c *Calculator) fetchAll(ctx context.Context) ([]todo.Todo, error) {
	first, err := c.fetchPage(ctx, 0)
	if err != nil {
		return nil, err
	}

	if first.TotalItems < 0 {
		return nil, fmt.Errorf("page 0 reported %d total items: %w", first.TotalItems, domain.ErrUnavailable)
	}
	p := todo.Pagination{PageSize: c.pageSize, TotalItems: first.TotalItems}
	if n := p.TotalPages(); n > MaxPages {
		return nil, fmt.Errorf("%d total items need %d pages, limit is %d: %w",
			first.TotalItems, n, MaxPages, domain.ErrUnavailable)
	}

	remaining := make([]int, 0, p.LastPage())
	for n := 1; n < p.TotalPages(); n++ {
		remaining = append(remaining, n)
	}

	pages, err := fanout.Collect(fanout.Run(ctx, c.workers, remaining, c.fetchPage))
	if err != nil {
		return nil, err
	}

	all := slices.Clone(first.Todos)
	for _, pg := range pages {
		all = append(all, pg.Todos...)
	}
	return all, nil
}

func (c *Calculator) fetchPage(ctx context.Context, number int) (todo.Page, error) {
	page, err := c.client.ListTodos(ctx, todo.ListQuery{
		Page: &todo.PageRequest{Number: number, Size: c.pageSize},
	})
	if err != nil {
		return todo.Page{}, fmt.Errorf("fetching page %d: %w", number, err)
	}
	return page, nil
}

func (c *Calculator) observe(ctx context.Context, elapsed time.Duration, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.MetricsComputeDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(telemetry.AttrResult.String(result)),
	)
}
