package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/jsamuelsen11/todo-view/internal/domain"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/config"
	"github.com/jsamuelsen11/todo-view/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL:  baseURL,
		BasePath: DefaultBasePath,
		Timeout:  5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return httpclient.New(cfg, "todo-api-test", nil, logger)
}

func newTodoClient(t *testing.T, ts *httptest.Server) *TodoClient {
	t.Helper()
	return NewTodoClient(newTestClient(t, ts.URL), "", slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func todoJSON(id int64, text string) map[string]any {
	return map[string]any{
		"id": id, "text": text, "priority": "MEDIUM", "done": false,
		"dueDate": nil, "doneDate": nil, "creationDate": "2024-03-20T10:00:00",
	}
}

func TestTodoClient_ListTodos(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("status"); got != "done" {
			t.Errorf("status = %q, want %q", got, "done")
		}
		if got := q.Get("sortBy"); got != "priority_asc-duedate_dsc" {
			t.Errorf("sortBy = %q, want verbatim composite", got)
		}
		if q.Has("priority") {
			t.Errorf("priority = %q, want omitted for ALL", q.Get("priority"))
		}
		writeJSON(t, w, map[string]any{
			"data":       []map[string]any{todoJSON(1, "Buy milk")},
			"totalItems": 11,
		})
	}))
	defer ts.Close()

	client := newTodoClient(t, ts)
	page, err := client.ListTodos(context.Background(), todo.ListQuery{
		Filter: todo.Filter{Priority: todo.PriorityAll, Status: todo.StatusDone},
		SortBy: "priority_asc-duedate_dsc",
		Page:   &todo.PageRequest{Number: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if page.TotalItems != 11 {
		t.Errorf("TotalItems = %d, want 11", page.TotalItems)
	}
	if len(page.Todos) != 1 || page.Todos[0].Text != "Buy milk" {
		t.Errorf("Todos = %+v, want one todo %q", page.Todos, "Buy milk")
	}
}

func TestTodoClient_ListTodos_CustomBasePath(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/todos" {
			t.Errorf("path = %q, want /api/todos", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want none for an empty ListQuery", r.URL.RawQuery)
		}
		writeJSON(t, w, map[string]any{"data": []any{}, "totalItems": 0})
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL), "/api/todos/", slog.New(slog.DiscardHandler))
	page, err := client.ListTodos(context.Background(), todo.ListQuery{})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(page.Todos) != 0 {
		t.Errorf("len(Todos) = %d, want 0", len(page.Todos))
	}
}

func TestTodoClient_ListTodos_WarnsOnUnparsableCreationDate(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		good := todoJSON(1, "fine")
		bad := todoJSON(2, "broken")
		bad["creationDate"] = "yesterday"
		writeJSON(t, w, map[string]any{"data": []map[string]any{good, bad}, "totalItems": 2})
	}))
	defer ts.Close()

	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	client := NewTodoClient(newTestClient(t, ts.URL), "", logger)

	page, err := client.ListTodos(context.Background(), todo.ListQuery{})
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(page.Todos) != 2 || !page.Todos[1].CreationDate.IsZero() {
		t.Fatalf("Todos = %+v, want the second one without a creation date", page.Todos)
	}

	out := logs.String()
	if strings.Count(out, "unparsable creation date") != 1 {
		t.Errorf("want exactly one warning, got logs:\n%s", out)
	}
	if !strings.Contains(out, "id=2") || !strings.Contains(out, "creation_date=yesterday") {
		t.Errorf("warning lacks id or raw value:\n%s", out)
	}
}

func TestTodoClient_CreateTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["text"] != "Write report" || body["priority"] != "HIGH" {
			t.Errorf("body = %v, want text and priority", body)
		}
		writeJSON(t, w, todoJSON(5, "Write report"))
	}))
	defer ts.Close()

	client := newTodoClient(t, ts)
	got, err := client.CreateTodo(context.Background(), &todo.Draft{Text: "Write report", Priority: todo.PriorityHigh})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if got.ID != 5 {
		t.Errorf("ID = %d, want 5", got.ID)
	}
}

func TestTodoClient_CreateTodo_ValidationError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"invalid","errors":[{"location":"body.text","message":"is required"}]}`)
	}))
	defer ts.Close()

	client := newTodoClient(t, ts)
	_, err := client.CreateTodo(context.Background(), &todo.Draft{Priority: todo.PriorityLow})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Fields["text"] != "is required" {
		t.Errorf("Fields[text] = %q, want %q", verr.Fields["text"], "is required")
	}
}

func TestTodoClient_UpdateTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/todos/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"text":"Renamed"}` {
			t.Errorf("body = %s, want only text", b)
		}
		writeJSON(t, w, todoJSON(3, "Renamed"))
	}))
	defer ts.Close()

	text := "Renamed"
	client := newTodoClient(t, ts)
	got, err := client.UpdateTodo(context.Background(), 3, &todo.Patch{Text: &text})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if got.Text != "Renamed" {
		t.Errorf("Text = %q, want %q", got.Text, "Renamed")
	}
}

func TestTodoClient_StatusChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(*TodoClient) (*todo.Todo, error)
		wantMethod string
		wantPath   string
	}{
		{
			name:       "mark done posts",
			call:       func(c *TodoClient) (*todo.Todo, error) { return c.MarkDone(context.Background(), 9) },
			wantMethod: http.MethodPost,
			wantPath:   "/todos/9/done",
		},
		{
			name:       "mark undone puts",
			call:       func(c *TodoClient) (*todo.Todo, error) { return c.MarkUndone(context.Background(), 9) },
			wantMethod: http.MethodPut,
			wantPath:   "/todos/9/undone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != tt.wantMethod || r.URL.Path != tt.wantPath {
					t.Errorf("request = %s %s, want %s %s", r.Method, r.URL.Path, tt.wantMethod, tt.wantPath)
				}
				b, _ := io.ReadAll(r.Body)
				if strings.TrimSpace(string(b)) != "{}" {
					t.Errorf("body = %q, want {}", b)
				}
				writeJSON(t, w, todoJSON(9, "x"))
			}))
			defer ts.Close()

			got, err := tt.call(newTodoClient(t, ts))
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got.ID != 9 {
				t.Errorf("ID = %d, want 9", got.ID)
			}
		})
	}
}

func TestTodoClient_DeleteTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/4" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := newTodoClient(t, ts).DeleteTodo(context.Background(), 4); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
}

func TestTodoClient_DeleteTodo_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	err := newTodoClient(t, ts).DeleteTodo(context.Background(), 4)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTodo() error = %v, want ErrNotFound", err)
	}
}

func TestTodoClient_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTodoClient(t, ts).ListTodos(context.Background(), todo.ListQuery{})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTodos() error = %v, want ErrUnavailable", err)
	}
}

func TestTodoClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer ts.Close()

	client := newTodoClient(t, ts)
	if client.Name() != "todo-api" {
		t.Errorf("Name() = %q, want %q", client.Name(), "todo-api")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for a closed breaker", err)
	}
}

func TestBuildListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    todo.ListQuery
		want string
	}{
		{name: "zero query", q: todo.ListQuery{}, want: ""},
		{
			name: "ALL filters omitted",
			q:    todo.ListQuery{Filter: todo.DefaultFilter()},
			want: "",
		},
		{
			name: "whitespace text omitted",
			q:    todo.ListQuery{Filter: todo.Filter{Text: "   "}},
			want: "",
		},
		{
			name: "text kept verbatim",
			q:    todo.ListQuery{Filter: todo.Filter{Text: " milk "}},
			want: "text=+milk+",
		},
		{
			name: "priority upper, status lower",
			q: todo.ListQuery{Filter: todo.Filter{
				Priority: todo.ForPriority(todo.PriorityHigh),
				Status:   todo.StatusUndone,
			}},
			want: "priority=HIGH&status=undone",
		},
		{
			name: "page zero is sent",
			q:    todo.ListQuery{Page: &todo.PageRequest{Number: 0, Size: 10}},
			want: "page=0&size=10",
		},
		{
			name: "size omitted when not positive",
			q:    todo.ListQuery{Page: &todo.PageRequest{Number: 2}},
			want: "page=2",
		},
		{
			name: "sort passed through",
			q:    todo.ListQuery{SortBy: "duedate_dsc"},
			want: "sortBy=duedate_dsc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BuildListQuery(tt.q).Encode(); got != tt.want {
				t.Errorf("BuildListQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildListQuery_Properties(t *testing.T) {
	t.Parallel()

	priorities := []todo.PriorityFilter{
		"", todo.PriorityAll,
		todo.ForPriority(todo.PriorityLow), todo.ForPriority(todo.PriorityMedium), todo.ForPriority(todo.PriorityHigh),
	}
	statuses := []todo.StatusFilter{"", todo.StatusAll, todo.StatusDone, todo.StatusUndone}

	rapid.Check(t, func(t *rapid.T) {
		f := todo.Filter{
			Text:     rapid.StringMatching(`[ a-z]{0,8}`).Draw(t, "text"),
			Priority: rapid.SampledFrom(priorities).Draw(t, "priority"),
			Status:   rapid.SampledFrom(statuses).Draw(t, "status"),
		}

		v := BuildListQuery(todo.ListQuery{Filter: f})

		for _, key := range []string{"priority", "status"} {
			if v.Get(key) == todo.All || strings.EqualFold(v.Get(key), todo.All) {
				t.Fatalf("%s = %q, ALL must never be sent", key, v.Get(key))
			}
		}
		if v.Has("text") != (strings.TrimSpace(f.Text) != "") {
			t.Fatalf("text present = %v for %q", v.Has("text"), f.Text)
		}
		if s := v.Get("status"); s != strings.ToLower(s) {
			t.Fatalf("status = %q, want lower case", s)
		}
	})
}
