package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
)

// MetricsCalculator derives the completion-time snapshot from the complete,
// unfiltered set of todos.
type MetricsCalculator interface {
	// Compute fetches every todo and returns the derived snapshot. Any fetch
	// failure fails the whole computation; there is no partial result.
	Compute(ctx context.Context) (todo.Metrics, error)
}

// ViewService defines the service port for the shared view state.
// Implemented by the view-state controller; called by inbound adapters.
// Every mutator refreshes the todo list (and, on success, the metrics)
// before it returns.
type ViewService interface {
	// SetFilters merges the non-nil fields of patch into the current filter
	// and resets the current page to 0.
	// Returns domain.ErrValidation for unknown priority or status values.
	SetFilters(ctx context.Context, patch todo.FilterPatch) error

	// SetSort replaces the composite sort wholesale. The empty string clears it.
	// Returns domain.ErrValidation, leaving state untouched, for malformed input.
	SetSort(ctx context.Context, sortBy string) error

	// ToggleSort cycles field through ascending, descending and removed.
	ToggleSort(ctx context.Context, field todo.SortField) error

	// SetPage moves to page, clamped into the known page range.
	SetPage(ctx context.Context, page int) error

	// SetPageSize changes the page size and resets the current page to 0.
	// Returns domain.ErrValidation when size is not positive.
	SetPageSize(ctx context.Context, size int) error

	// ToggleTodoStatus marks a todo done or undone through the remote API.
	ToggleTodoStatus(ctx context.Context, id int64, done bool) error

	// RefreshTodos refetches the current page with the current filters,
	// sort and pagination.
	RefreshTodos(ctx context.Context) error

	// RefreshMetrics recomputes the metrics snapshot. Failures never touch
	// the primary error state.
	RefreshMetrics(ctx context.Context) error

	// CreateTodo creates a todo and refreshes the view.
	CreateTodo(ctx context.Context, draft *todo.Draft) (*todo.Todo, error)

	// UpdateTodo applies a partial update and refreshes the view.
	UpdateTodo(ctx context.Context, id int64, patch *todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo and refreshes the view.
	DeleteTodo(ctx context.Context, id int64) error

	// Snapshot returns a copy of the whole view state. The caller owns it.
	Snapshot() ViewState
}

// ViewState is a point-in-time copy of everything a presentation layer renders.
type ViewState struct {
	Todos      []todo.Todo
	Loading    bool
	Error      string
	Filter     todo.Filter
	Sort       todo.Sort
	Pagination todo.Pagination
	Metrics    todo.Metrics

	// MetricsLoading is true while a metrics computation is in flight.
	MetricsLoading bool
	// UpdatedAt is when the todo list was last replaced; zero before the first
	// successful fetch.
	UpdatedAt time.Time
	// MetricsUpdatedAt is when the metrics snapshot was last replaced.
	MetricsUpdatedAt time.Time
}
