package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	tododto "github.com/jsamuelsen11/todo-view/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// DefaultBasePath is the collection path of the remote todo API.
const DefaultBasePath = "/todos"

// Compile-time interface check.
var _ ports.TodoClient = (*TodoClient)(nil)

// TodoClient is the outbound adapter for the remote todo API. It
// implements [ports.TodoClient].
//
// All methods translate between our domain types and the remote API's
// representations via the ACL translators in sub-package [tododto]. HTTP
// errors are mapped to domain errors (ErrNotFound, ErrValidation, etc.) by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, optional
// rate limiting, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type TodoClient struct {
	req      *Requester
	basePath string
	logger   *slog.Logger
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the remote API
// root (e.g. "http://localhost:9090"); basePath is the todo collection path
// beneath it and defaults to [DefaultBasePath] when empty.
func NewTodoClient(client *httpclient.Client, basePath string, logger *slog.Logger) *TodoClient {
	basePath = strings.TrimRight(basePath, "/")
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return &TodoClient{
		req:      NewRequester(client, logger),
		basePath: basePath,
		logger:   logging.OrDiscard(logger),
	}
}

// ListTodos fetches one page from GET {base}?text&priority&status&size&page&sortBy.
// Returns the translated page or a domain error on failure.
func (c *TodoClient) ListTodos(ctx context.Context, q todo.ListQuery) (todo.Page, error) {
	path := c.basePath
	if v := BuildListQuery(q); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var dto tododto.PageResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return todo.Page{}, err
	}
	page := tododto.ToDomainPage(dto)
	for i := range page.Todos {
		c.checkCreationDate(ctx, &page.Todos[i], dto.Data[i].CreationDate)
	}
	return page, nil
}

// CreateTodo sends a POST {base} with the translated draft and returns the
// created todo. Returns [domain.ErrValidation] if the remote API rejects it.
func (c *TodoClient) CreateTodo(ctx context.Context, d *todo.Draft) (*todo.Todo, error) {
	reqDTO := tododto.ToCreateTodoRequest(d)

	var respDTO tododto.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, c.basePath, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return c.toDomain(ctx, &respDTO), nil
}

// UpdateTodo sends a PUT {base}/{id} carrying only the patched fields.
// Returns [domain.ErrNotFound] if the todo does not exist.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, p *todo.Patch) (*todo.Todo, error) {
	reqDTO := tododto.ToUpdateTodoRequest(p)

	var respDTO tododto.TodoDTO
	if err := c.req.Do(ctx, http.MethodPut, c.itemPath(id), reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return c.toDomain(ctx, &respDTO), nil
}

// MarkDone sends POST {base}/{id}/done with an empty JSON object.
func (c *TodoClient) MarkDone(ctx context.Context, id int64) (*todo.Todo, error) {
	return c.changeStatus(ctx, http.MethodPost, c.itemPath(id)+"/done")
}

// MarkUndone sends PUT {base}/{id}/undone with an empty JSON object.
func (c *TodoClient) MarkUndone(ctx context.Context, id int64) (*todo.Todo, error) {
	return c.changeStatus(ctx, http.MethodPut, c.itemPath(id)+"/undone")
}

// DeleteTodo sends DELETE {base}/{id}. Returns [domain.ErrNotFound] if the
// todo does not exist.
func (c *TodoClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, c.itemPath(id), nil, nil)
}

func (c *TodoClient) changeStatus(ctx context.Context, method, path string) (*todo.Todo, error) {
	var respDTO tododto.TodoDTO
	if err := c.req.Do(ctx, method, path, tododto.StatusChangeRequestDTO{}, &respDTO); err != nil {
		return nil, err
	}
	return c.toDomain(ctx, &respDTO), nil
}

func (c *TodoClient) toDomain(ctx context.Context, dto *tododto.TodoDTO) *todo.Todo {
	t := tododto.ToDomainTodo(dto)
	c.checkCreationDate(ctx, &t, dto.CreationDate)
	return &t
}

// checkCreationDate warns about a record whose creation date did not parse.
// Such a record renders as an invalid date and is left out of the metrics.
func (c *TodoClient) checkCreationDate(ctx context.Context, t *todo.Todo, raw string) {
	if !t.CreationDate.IsZero() {
		return
	}
	c.logger.WarnContext(ctx, "remote todo has an unparsable creation date",
		slog.Int64("id", t.ID),
		slog.String("creation_date", raw),
	)
}

func (c *TodoClient) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.basePath, id)
}

// BuildListQuery converts a [todo.ListQuery] into remote API query
// parameters. ALL filters and blank text are omitted, status is lower-cased,
// size is sent only when positive, page only when a page request is
// present, and sortBy is passed through verbatim when non-empty.
func BuildListQuery(q todo.ListQuery) url.Values {
	v := url.Values{}

	f := q.Filter
	if strings.TrimSpace(f.Text) != "" {
		v.Set("text", f.Text)
	}
	if !f.Priority.IsAll() {
		v.Set("priority", f.Priority.String())
	}
	if !f.Status.IsAll() {
		v.Set("status", strings.ToLower(f.Status.String()))
	}

	if q.Page != nil {
		if q.Page.Size > 0 {
			v.Set("size", strconv.Itoa(q.Page.Size))
		}
		v.Set("page", strconv.Itoa(q.Page.Number))
	}

	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	return v
}
