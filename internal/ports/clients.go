package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
)

// TodoClient defines the client port for the remote todo API.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to remote API endpoints using domain terminology.
type TodoClient interface {
	// ListTodos returns one page of todos matching the query together with
	// the total number of matching records. Filter values of ALL are never
	// sent; a nil q.Page leaves paging to the remote API's defaults.
	ListTodos(ctx context.Context, q todo.ListQuery) (todo.Page, error)

	// CreateTodo creates a new todo and returns the created entity.
	// Returns domain.ErrValidation if the remote API rejects the draft.
	CreateTodo(ctx context.Context, draft *todo.Draft) (*todo.Todo, error)

	// UpdateTodo applies a partial update and returns the updated entity.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch *todo.Patch) (*todo.Todo, error)

	// MarkDone marks a todo as completed. The remote API stamps DoneDate.
	// Returns domain.ErrNotFound if the todo does not exist.
	MarkDone(ctx context.Context, id int64) (*todo.Todo, error)

	// MarkUndone reopens a completed todo and clears DoneDate.
	// Returns domain.ErrNotFound if the todo does not exist.
	MarkUndone(ctx context.Context, id int64) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
