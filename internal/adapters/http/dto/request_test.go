package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/domain"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateTodoRequest{Text: "Buy milk", Priority: "HIGH"},
			wantErr: false,
		},
		{
			name:    "lower-case priority and local due date pass",
			req:     dto.CreateTodoRequest{Text: "Buy milk", Priority: "low", DueDate: stringPtr("2024-03-20T10:00:00")},
			wantErr: false,
		},
		{
			name:      "blank text fails",
			req:       dto.CreateTodoRequest{Text: "   ", Priority: "LOW"},
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "missing priority fails",
			req:       dto.CreateTodoRequest{Text: "x"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "unknown priority fails",
			req:       dto.CreateTodoRequest{Text: "x", Priority: "URGENT"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "unparsable due date fails",
			req:       dto.CreateTodoRequest{Text: "x", Priority: "LOW", DueDate: stringPtr("tomorrow")},
			wantErr:   true,
			wantField: "dueDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTodoRequest_ToDraft(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Text: "Buy milk", Priority: "medium", DueDate: stringPtr("2024-03-20T10:00:00Z")}
	d := req.ToDraft()

	if d.Priority != todo.PriorityMedium {
		t.Errorf("Priority = %q, want MEDIUM", d.Priority)
	}
	want := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", d.DueDate, want)
	}

	noDue := (&dto.CreateTodoRequest{Text: "x", Priority: "LOW", DueDate: stringPtr("")}).ToDraft()
	if noDue.DueDate != nil {
		t.Errorf("DueDate = %v, want nil for empty string", noDue.DueDate)
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantErr   bool
		wantField string
	}{
		{name: "empty request passes", req: dto.UpdateTodoRequest{}},
		{name: "text only passes", req: dto.UpdateTodoRequest{Text: stringPtr("Renamed")}},
		{
			name:      "blank text fails",
			req:       dto.UpdateTodoRequest{Text: stringPtr(" ")},
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "unknown priority fails",
			req:       dto.UpdateTodoRequest{Priority: stringPtr("NONE")},
			wantErr:   true,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_ToPatch(t *testing.T) {
	t.Parallel()

	p := (&dto.UpdateTodoRequest{Priority: stringPtr("high")}).ToPatch()
	if p.Text != nil || p.DueDate != nil {
		t.Errorf("patch = %+v, want only priority", p)
	}
	if p.Priority == nil || *p.Priority != todo.PriorityHigh {
		t.Errorf("Priority = %v, want HIGH", p.Priority)
	}
}

func TestFilterRequest_ToPatch(t *testing.T) {
	t.Parallel()

	t.Run("parses case-insensitively", func(t *testing.T) {
		t.Parallel()

		req := dto.FilterRequest{Priority: stringPtr("all"), Status: stringPtr("done")}
		patch, err := req.ToPatch()
		if err != nil {
			t.Fatalf("ToPatch() error = %v", err)
		}
		if *patch.Priority != todo.PriorityAll {
			t.Errorf("Priority = %q, want ALL", *patch.Priority)
		}
		if *patch.Status != todo.StatusDone {
			t.Errorf("Status = %q, want DONE", *patch.Status)
		}
		if patch.Text != nil {
			t.Errorf("Text = %q, want nil", *patch.Text)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		t.Parallel()

		req := dto.FilterRequest{Status: stringPtr("pending")}
		requireValidationField(t, req.Validate(), "status")
	})
}

func TestSortRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := []*string{nil, stringPtr(""), stringPtr("priority_asc"), stringPtr("priority_asc-duedate_dsc")}
	for _, v := range valid {
		if err := (&dto.SortRequest{SortBy: v}).Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", v, err)
		}
	}

	requireValidationField(t, (&dto.SortRequest{SortBy: stringPtr("priority_desc")}).Validate(), "sortBy")

	if got := (&dto.SortRequest{}).Value(); got != "" {
		t.Errorf("Value() = %q, want empty for null", got)
	}
}

func TestToggleSortRequest_Validate(t *testing.T) {
	t.Parallel()

	req := dto.ToggleSortRequest{Field: "DueDate"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if req.SortField() != todo.SortByDueDate {
		t.Errorf("SortField() = %q, want duedate", req.SortField())
	}

	requireValidationField(t, (&dto.ToggleSortRequest{}).Validate(), "field")
	requireValidationField(t, (&dto.ToggleSortRequest{Field: "text"}).Validate(), "field")
}

func TestPagingRequests_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.PageRequest{Page: intPtr(-3)}).Validate(); err != nil {
		t.Errorf("PageRequest negative page = %v, want nil (clamped later)", err)
	}
	requireValidationField(t, (&dto.PageRequest{}).Validate(), "page")

	if err := (&dto.PageSizeRequest{PageSize: intPtr(25)}).Validate(); err != nil {
		t.Errorf("PageSizeRequest(25) = %v, want nil", err)
	}
	requireValidationField(t, (&dto.PageSizeRequest{}).Validate(), "pageSize")
	requireValidationField(t, (&dto.PageSizeRequest{PageSize: intPtr(0)}).Validate(), "pageSize")
}

func TestStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.StatusRequest{Done: boolPtr(false)}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.StatusRequest{}).Validate(), "done")
}
