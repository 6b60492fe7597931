// Package todo holds the todo record and the view-side value types built
// around it: filters, composite sort state, pagination, and the completion
// metrics snapshot.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-view/internal/domain"
)

// MaxTextLength is the longest todo text the remote API accepts, in runes.
const MaxTextLength = 120

// Todo is a single task record as owned by the remote API.
type Todo struct {
	ID           int64
	Text         string
	Priority     Priority
	Done         bool
	DueDate      *time.Time
	DoneDate     *time.Time
	CreationDate time.Time
}

// Validate checks the record invariants that the view relies on.
// Returns a *domain.ValidationError with per-field details, or nil.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	validateText(fields, t.Text)
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	if t.DoneDate != nil && !t.Done {
		fields["done_date"] = "must be absent while the todo is not done"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft carries the fields a caller supplies when creating a todo. The ID,
// done state and creation date are assigned by the remote API.
type Draft struct {
	Text     string
	Priority Priority
	DueDate  *time.Time
}

// Validate checks that required fields are present and well formed.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	validateText(fields, d.Text)
	if !d.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", d.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged by the remote API.
type Patch struct {
	Text     *string
	Priority *Priority
	DueDate  *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Text == nil && p.Priority == nil && p.DueDate == nil
}

// Validate checks any provided fields.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Text != nil {
		validateText(fields, *p.Text)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *p.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateText(fields map[string]string, text string) {
	switch {
	case strings.TrimSpace(text) == "":
		fields["text"] = domain.MsgRequired
	case utf8.RuneCountInString(text) > MaxTextLength:
		fields["text"] = fmt.Sprintf("must be at most %d characters", MaxTextLength)
	}
}
