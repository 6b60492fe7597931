// Package viewstate holds the single view-state controller: the current page
// of todos, the filter, sort and pagination selections that produced it, the
// loading and error flags, and the completion metrics snapshot.
//
// Every mutator refreshes the list synchronously before it returns, and a
// successful list refresh is followed by one metrics refresh. Network calls
// run outside the lock; each list fetch and each metrics computation carries
// a sequence number and its result is applied only if no later-issued
// request has been applied already.
package viewstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-view/internal/domain"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// Error states shown by the presentation layer.
const (
	ErrMsgFetchTodos   = "Failed to fetch todos"
	ErrMsgUpdateStatus = "Failed to update todo status"
)

// Compile-time interface checks.
var (
	_ ports.ViewService   = (*Controller)(nil)
	_ ports.HealthChecker = (*Controller)(nil)
)

// Controller implements ports.ViewService. One instance is shared by every
// presentation surface of the process.
type Controller struct {
	client   ports.TodoClient
	calc     ports.MetricsCalculator
	notifier ports.Notifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.Mutex
	state ports.ViewState

	listInflight    int
	listIssued      uint64
	listApplied     uint64
	metricsInflight int
	metricsIssued   uint64
	metricsApplied  uint64
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides the clock used for UpdatedAt stamps and notifications.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithTelemetry records refresh and stale-response counters on m.
func WithTelemetry(m *telemetry.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// NewController creates a Controller starting on page 0 with the given page
// size, no filters, no sort and a zero metrics snapshot. A nil notifier
// drops notifications.
func NewController(
	client ports.TodoClient,
	calc ports.MetricsCalculator,
	notifier ports.Notifier,
	pageSize int,
	logger *slog.Logger,
	opts ...Option,
) *Controller {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	c := &Controller{
		client:   client,
		calc:     calc,
		notifier: notifier,
		logger:   logging.OrDiscard(logger),
		now:      time.Now,
		state: ports.ViewState{
			Filter:     todo.DefaultFilter(),
			Pagination: todo.NewPagination(pageSize),
			Metrics:    todo.ZeroMetrics(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the whole view state.
func (c *Controller) Snapshot() ports.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Todos = append([]todo.Todo(nil), c.state.Todos...)
	s.Metrics = c.state.Metrics.Clone()
	s.Loading = c.listInflight > 0
	s.MetricsLoading = c.metricsInflight > 0
	return s
}

// SetFilters merges the non-nil fields of patch, resets to page 0 and refreshes.
func (c *Controller) SetFilters(ctx context.Context, patch todo.FilterPatch) error {
	c.mu.Lock()
	next := c.state.Filter.Apply(patch)
	if err := next.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.state.Filter = next
	c.state.Pagination.CurrentPage = 0
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "filters changed",
		slog.String("text", next.Text),
		slog.String("priority", next.Priority.String()),
		slog.String("status", next.Status.String()),
	)
	return c.RefreshTodos(ctx)
}

// SetSort replaces the sort with a precomputed composite string. Malformed
// input is rejected with domain.ErrValidation and leaves state untouched.
func (c *Controller) SetSort(ctx context.Context, sortBy string) error {
	s, err := todo.ParseSort(sortBy)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	c.mu.Lock()
	c.state.Sort = s
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "sort changed", slog.String("sort_by", s.String()))
	return c.RefreshTodos(ctx)
}

// ToggleSort cycles field through ascending, descending and removed.
func (c *Controller) ToggleSort(ctx context.Context, field todo.SortField) error {
	if !field.IsValid() {
		return domain.NewFieldError("field", fmt.Sprintf("invalid: %q", field))
	}

	c.mu.Lock()
	c.state.Sort = c.state.Sort.Toggle(field)
	sortBy := c.state.Sort.String()
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "sort toggled",
		slog.String("field", string(field)),
		slog.String("sort_by", sortBy),
	)
	return c.RefreshTodos(ctx)
}

// SetPage moves to page, clamped into the known page range, and refreshes.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.state.Pagination.CurrentPage = c.state.Pagination.Clamp(page)
	c.mu.Unlock()

	return c.RefreshTodos(ctx)
}

// SetPageSize changes the page size, resets to page 0 and refreshes.
func (c *Controller) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		return domain.NewFieldError("page_size", "must be positive")
	}
	c.mu.Lock()
	c.state.Pagination.PageSize = size
	c.state.Pagination.CurrentPage = 0
	c.mu.Unlock()

	return c.RefreshTodos(ctx)
}

// RefreshTodos refetches the current page. On success the list and total
// are replaced, the error is cleared and the metrics are refreshed. On
// failure the error state is set and the previous list is kept, unless ctx
// itself was canceled.
func (c *Controller) RefreshTodos(ctx context.Context) error {
	applied, err := c.fetchTodos(ctx, true)
	if err != nil || !applied {
		return err
	}
	// Metrics failures are reported through notifications only.
	_ = c.RefreshMetrics(ctx)
	return nil
}

// fetchTodos issues one list request and applies its outcome unless a later
// request has already been applied. applied is false for dropped responses.
func (c *Controller) fetchTodos(ctx context.Context, allowClamp bool) (applied bool, err error) {
	c.mu.Lock()
	c.listIssued++
	seq := c.listIssued
	c.listInflight++
	q := todo.ListQuery{
		Filter: c.state.Filter,
		SortBy: c.state.Sort.String(),
		Page:   c.state.Pagination.Request(),
	}
	c.mu.Unlock()

	page, fetchErr := c.client.ListTodos(ctx, q)

	c.mu.Lock()
	c.listInflight--
	if abandoned(ctx, fetchErr) {
		c.mu.Unlock()
		c.countRefresh(ctx, "todos", "canceled")
		c.logAbandoned(ctx, "RefreshTodos", fetchErr)
		return false, fetchErr
	}
	if seq <= c.listApplied {
		c.mu.Unlock()
		c.dropStale(ctx, "todos", seq)
		return false, fetchErr
	}
	c.listApplied = seq

	if fetchErr != nil {
		c.state.Error = ErrMsgFetchTodos
		c.mu.Unlock()

		c.countRefresh(ctx, "todos", "error")
		c.logger.ErrorContext(ctx, "failed to fetch todos",
			slog.String("operation", "RefreshTodos"),
			slog.Any("error", fetchErr),
		)
		c.notify(ctx, ports.NotificationError, "Failed to load tasks",
			"There was an error fetching your tasks. Please try again.")
		return true, fetchErr
	}

	c.state.Todos = page.Todos
	c.state.Pagination.TotalItems = page.TotalItems
	c.state.Error = ""
	c.state.UpdatedAt = c.now()

	refetch := false
	p := c.state.Pagination
	switch {
	case p.TotalItems == 0 && p.CurrentPage > 0:
		c.state.Pagination.CurrentPage = 0
	case !p.InRange():
		c.state.Pagination.CurrentPage = p.LastPage()
		refetch = allowClamp
	}
	c.mu.Unlock()

	c.countRefresh(ctx, "todos", "success")
	c.logger.DebugContext(ctx, "todos refreshed",
		slog.Uint64("seq", seq),
		slog.Int("count", len(page.Todos)),
		slog.Int("total_items", page.TotalItems),
	)

	if refetch {
		c.logger.InfoContext(ctx, "current page out of range, refetching last page",
			slog.Int("requested_page", p.CurrentPage),
			slog.Int("last_page", p.LastPage()),
		)
		return c.fetchTodos(ctx, false)
	}
	return true, nil
}

// RefreshMetrics recomputes the metrics snapshot. Failures are logged and
// notified but never set the primary error state.
func (c *Controller) RefreshMetrics(ctx context.Context) error {
	c.mu.Lock()
	c.metricsIssued++
	seq := c.metricsIssued
	c.metricsInflight++
	c.mu.Unlock()

	m, err := c.calc.Compute(ctx)

	c.mu.Lock()
	c.metricsInflight--
	if abandoned(ctx, err) {
		c.mu.Unlock()
		c.countRefresh(ctx, "metrics", "canceled")
		c.logAbandoned(ctx, "RefreshMetrics", err)
		return err
	}
	if seq <= c.metricsApplied {
		c.mu.Unlock()
		c.dropStale(ctx, "metrics", seq)
		return err
	}
	c.metricsApplied = seq

	if err != nil {
		c.mu.Unlock()

		c.countRefresh(ctx, "metrics", "error")
		c.logger.ErrorContext(ctx, "failed to compute metrics",
			slog.String("operation", "RefreshMetrics"),
			slog.Any("error", err),
		)
		c.notify(ctx, ports.NotificationError, "Failed to load metrics",
			"There was an error fetching task metrics. Please try again.")
		return err
	}

	c.state.Metrics = m.Clone()
	c.state.MetricsUpdatedAt = c.now()
	c.mu.Unlock()

	c.countRefresh(ctx, "metrics", "success")
	return nil
}

// ToggleTodoStatus marks a todo done or undone. On failure the error state
// is set and the list is left untouched.
func (c *Controller) ToggleTodoStatus(ctx context.Context, id int64, done bool) error {
	var err error
	if done {
		_, err = c.client.MarkDone(ctx, id)
	} else {
		_, err = c.client.MarkUndone(ctx, id)
	}

	if abandoned(ctx, err) {
		c.logAbandoned(ctx, "ToggleTodoStatus", err)
		return err
	}
	if err != nil {
		c.mu.Lock()
		c.state.Error = ErrMsgUpdateStatus
		c.mu.Unlock()

		c.logger.ErrorContext(ctx, "failed to update todo status",
			slog.String("operation", "ToggleTodoStatus"),
			slog.Int64("id", id),
			slog.Bool("done", done),
			slog.Any("error", err),
		)
		c.notify(ctx, ports.NotificationError, "Failed to update task status",
			"There was an error updating the task status. Please try again.")
		return err
	}

	if done {
		c.notify(ctx, ports.NotificationSuccess, "Task completed", "Task has been marked as complete.")
	} else {
		c.notify(ctx, ports.NotificationInfo, "Task reopened", "Task has been marked as incomplete.")
	}
	return c.RefreshTodos(ctx)
}

// CreateTodo validates and creates a todo, then refreshes the view.
func (c *Controller) CreateTodo(ctx context.Context, draft *todo.Draft) (*todo.Todo, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := c.client.CreateTodo(ctx, draft)
	if abandoned(ctx, err) {
		c.logAbandoned(ctx, "CreateTodo", err)
		return nil, err
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		c.notifySaveFailed(ctx)
		return nil, err
	}

	c.notify(ctx, ports.NotificationSuccess, "Task created", "Your task has been successfully created.")
	c.refreshAfterWrite(ctx, "CreateTodo")
	return created, nil
}

// UpdateTodo validates and applies a partial update, then refreshes the view.
func (c *Controller) UpdateTodo(ctx context.Context, id int64, patch *todo.Patch) (*todo.Todo, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := c.client.UpdateTodo(ctx, id, patch)
	if abandoned(ctx, err) {
		c.logAbandoned(ctx, "UpdateTodo", err)
		return nil, err
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		c.notifySaveFailed(ctx)
		return nil, err
	}

	c.notify(ctx, ports.NotificationSuccess, "Task updated", "Your task has been successfully updated.")
	c.refreshAfterWrite(ctx, "UpdateTodo")
	return updated, nil
}

// DeleteTodo deletes a todo, then refreshes the view.
func (c *Controller) DeleteTodo(ctx context.Context, id int64) error {
	err := c.client.DeleteTodo(ctx, id)
	if abandoned(ctx, err) {
		c.logAbandoned(ctx, "DeleteTodo", err)
		return err
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		c.notify(ctx, ports.NotificationError, "Error", "Failed to delete task. Please try again.")
		return err
	}

	c.notify(ctx, ports.NotificationSuccess, "Task deleted", "Your task has been successfully deleted.")
	c.refreshAfterWrite(ctx, "DeleteTodo")
	return nil
}

// refreshAfterWrite refreshes after a successful remote write. A refresh
// failure is already reflected in the error state and must not turn the
// write itself into a failure.
func (c *Controller) refreshAfterWrite(ctx context.Context, op string) {
	if err := c.RefreshTodos(ctx); err != nil {
		c.logger.WarnContext(ctx, "refresh after write failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}
}

// Name implements ports.HealthChecker.
func (c *Controller) Name() string {
	return "view"
}

// HealthCheck reports the last list refresh outcome. It never performs a
// network call.
func (c *Controller) HealthCheck(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Error != "" {
		return fmt.Errorf("view: %s", c.state.Error)
	}
	return nil
}

func (c *Controller) notifySaveFailed(ctx context.Context) {
	c.notify(ctx, ports.NotificationError, "Failed to save task",
		"There was an error saving your task. Please try again.")
}

func (c *Controller) notify(ctx context.Context, level ports.NotificationLevel, title, description string) {
	c.notifier.Notify(ctx, ports.Notification{
		Level:       level,
		Title:       title,
		Description: description,
		Time:        c.now(),
	})
}

// abandoned reports whether err stems from the caller's own context ending.
// Such failures leave the shared view state and the notification feed alone.
func abandoned(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil
}

func (c *Controller) logAbandoned(ctx context.Context, op string, err error) {
	c.logger.DebugContext(ctx, "request abandoned by caller",
		slog.String("operation", op),
		slog.Any("error", err),
	)
}

func (c *Controller) dropStale(ctx context.Context, resource string, seq uint64) {
	if c.metrics != nil {
		c.metrics.StaleResponseTotal.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrResource.String(resource)),
		)
	}
	c.logger.DebugContext(ctx, "discarding superseded response",
		slog.String("resource", resource),
		slog.Uint64("seq", seq),
	)
}

func (c *Controller) countRefresh(ctx context.Context, resource, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ViewRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResource.String(resource),
		telemetry.AttrResult.String(result),
	))
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, ports.Notification) {}
