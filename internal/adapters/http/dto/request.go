package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-view/internal/domain"
	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/datefmt"
)

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Text     string  `json:"text"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// Validate checks that required fields are present and well formed.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if r.Priority == "" {
		fields["priority"] = domain.MsgRequired
	} else if _, err := todo.ParsePriority(r.Priority); err != nil {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	validateDueDate(fields, r.DueDate)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDraft maps a validated request to a domain draft.
func (r *CreateTodoRequest) ToDraft() *todo.Draft {
	p, _ := todo.ParsePriority(r.Priority)
	return &todo.Draft{
		Text:     r.Text,
		Priority: p,
		DueDate:  parseDueDate(r.DueDate),
	}
}

// UpdateTodoRequest represents the JSON body for updating a todo.
// All fields are optional; nil means "do not change this field.".
type UpdateTodoRequest struct {
	Text     *string `json:"text,omitempty"`
	Priority *string `json:"priority,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Text != nil && strings.TrimSpace(*r.Text) == "" {
		fields["text"] = domain.MsgMustNotEmpty
	}
	if r.Priority != nil {
		if _, err := todo.ParsePriority(*r.Priority); err != nil {
			fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
		}
	}
	validateDueDate(fields, r.DueDate)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps a validated request to a domain patch.
func (r *UpdateTodoRequest) ToPatch() *todo.Patch {
	p := &todo.Patch{Text: r.Text, DueDate: parseDueDate(r.DueDate)}
	if r.Priority != nil {
		prio, _ := todo.ParsePriority(*r.Priority)
		p.Priority = &prio
	}
	return p
}

// FilterRequest represents the JSON body for changing the view filters.
// Omitted fields keep their current value.
type FilterRequest struct {
	Text     *string `json:"text,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Validate checks that the enumerated fields hold known values.
func (r *FilterRequest) Validate() error {
	_, err := r.ToPatch()
	return err
}

// ToPatch parses the request into a filter patch. Priority and status are
// matched case-insensitively and accept "ALL".
func (r *FilterRequest) ToPatch() (todo.FilterPatch, error) {
	fields := make(map[string]string)
	patch := todo.FilterPatch{Text: r.Text}

	if r.Priority != nil {
		p, err := todo.ParsePriorityFilter(*r.Priority)
		if err != nil {
			fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
		}
		patch.Priority = &p
	}
	if r.Status != nil {
		s, err := todo.ParseStatusFilter(*r.Status)
		if err != nil {
			fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
		}
		patch.Status = &s
	}

	if len(fields) > 0 {
		return todo.FilterPatch{}, &domain.ValidationError{Fields: fields}
	}
	return patch, nil
}

// SortRequest replaces the composite sort. A null or empty sortBy clears it.
type SortRequest struct {
	SortBy *string `json:"sortBy"`
}

// Validate checks the composite sort string.
func (r *SortRequest) Validate() error {
	if _, err := todo.ParseSort(r.Value()); err != nil {
		return domain.NewFieldError("sortBy", err.Error())
	}
	return nil
}

// Value returns the requested sort string, "" for null.
func (r *SortRequest) Value() string {
	if r.SortBy == nil {
		return ""
	}
	return *r.SortBy
}

// ToggleSortRequest cycles one sort field.
type ToggleSortRequest struct {
	Field string `json:"field"`
}

// Validate checks that the field is sortable.
func (r *ToggleSortRequest) Validate() error {
	if r.Field == "" {
		return domain.NewFieldError("field", domain.MsgRequired)
	}
	if !todo.SortField(strings.ToLower(r.Field)).IsValid() {
		return domain.NewFieldError("field", fmt.Sprintf("invalid: %q", r.Field))
	}
	return nil
}

// SortField returns the normalised field.
func (r *ToggleSortRequest) SortField() todo.SortField {
	return todo.SortField(strings.ToLower(r.Field))
}

// PageRequest moves the view to another page.
type PageRequest struct {
	Page *int `json:"page"`
}

// Validate checks that page is present. Out of range values are clamped by
// the view, not rejected.
func (r *PageRequest) Validate() error {
	if r.Page == nil {
		return domain.NewFieldError("page", domain.MsgRequired)
	}
	return nil
}

// PageSizeRequest changes the page size.
type PageSizeRequest struct {
	PageSize *int `json:"pageSize"`
}

// Validate checks that pageSize is present and positive.
func (r *PageSizeRequest) Validate() error {
	switch {
	case r.PageSize == nil:
		return domain.NewFieldError("pageSize", domain.MsgRequired)
	case *r.PageSize <= 0:
		return domain.NewFieldError("pageSize", fmt.Sprintf("must be positive, got %d", *r.PageSize))
	}
	return nil
}

// StatusRequest marks a todo done or undone.
type StatusRequest struct {
	Done *bool `json:"done"`
}

// Validate checks that done is present.
func (r *StatusRequest) Validate() error {
	if r.Done == nil {
		return domain.NewFieldError("done", domain.MsgRequired)
	}
	return nil
}

func validateDueDate(fields map[string]string, due *string) {
	if due == nil || strings.TrimSpace(*due) == "" {
		return
	}
	if _, err := datefmt.ParseTimestamp(*due); err != nil {
		fields["dueDate"] = fmt.Sprintf("invalid date: %q", *due)
	}
}

func parseDueDate(due *string) *time.Time {
	if due == nil || strings.TrimSpace(*due) == "" {
		return nil
	}
	t, err := datefmt.ParseTimestamp(*due)
	if err != nil {
		return nil
	}
	return &t
}
