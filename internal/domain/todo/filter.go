package todo

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-view/internal/domain"
)

// All is the "no constraint" sentinel shared by the priority and status
// filters. It is never sent to the remote API.
const All = "ALL"

// PriorityFilter constrains the listing to one priority, or All.
type PriorityFilter string

// PriorityAll matches every priority.
const PriorityAll PriorityFilter = All

// ForPriority returns a filter matching exactly p.
func ForPriority(p Priority) PriorityFilter {
	return PriorityFilter(p)
}

// IsAll reports whether the filter places no constraint. The zero value
// counts as All.
func (f PriorityFilter) IsAll() bool {
	return f == "" || f == PriorityAll
}

// IsValid returns true for All or any defined priority.
func (f PriorityFilter) IsValid() bool {
	return f.IsAll() || Priority(f).IsValid()
}

// Priority returns the constrained priority. It is only meaningful when
// IsAll is false.
func (f PriorityFilter) Priority() Priority {
	return Priority(f)
}

// String implements fmt.Stringer.
func (f PriorityFilter) String() string {
	if f == "" {
		return All
	}
	return string(f)
}

// ParsePriorityFilter accepts All or a priority name, case-insensitively.
// The empty string parses as All.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	f := PriorityFilter(strings.ToUpper(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid priority filter %q", s)
	}
	if f == "" {
		return PriorityAll, nil
	}
	return f, nil
}

// StatusFilter constrains the listing by completion state.
type StatusFilter string

const (
	StatusAll    StatusFilter = All
	StatusDone   StatusFilter = "DONE"
	StatusUndone StatusFilter = "UNDONE"
)

// IsAll reports whether the filter places no constraint. The zero value
// counts as All.
func (f StatusFilter) IsAll() bool {
	return f == "" || f == StatusAll
}

// IsValid returns true if the status filter is one of the defined constants.
func (f StatusFilter) IsValid() bool {
	switch f {
	case "", StatusAll, StatusDone, StatusUndone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f StatusFilter) String() string {
	if f == "" {
		return All
	}
	return string(f)
}

// ParseStatusFilter accepts ALL, DONE or UNDONE, case-insensitively. The
// empty string parses as All.
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(strings.ToUpper(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid status filter %q", s)
	}
	if f == "" {
		return StatusAll, nil
	}
	return f, nil
}

// Filter holds the listing constraints selected in the view.
type Filter struct {
	Text     string
	Priority PriorityFilter
	Status   StatusFilter
}

// DefaultFilter returns the unconstrained filter.
func DefaultFilter() Filter {
	return Filter{Priority: PriorityAll, Status: StatusAll}
}

// Normalize replaces zero-valued sentinels with their explicit All form.
func (f Filter) Normalize() Filter {
	if f.Priority == "" {
		f.Priority = PriorityAll
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	return f
}

// Validate checks that both enumerated fields hold known values.
func (f Filter) Validate() error {
	fields := make(map[string]string)
	if !f.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", f.Priority)
	}
	if !f.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", f.Status)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// FilterPatch is a partial filter change; nil fields keep their value.
type FilterPatch struct {
	Text     *string
	Priority *PriorityFilter
	Status   *StatusFilter
}

// Apply merges the patch into f and returns the result.
func (f Filter) Apply(p FilterPatch) Filter {
	if p.Text != nil {
		f.Text = *p.Text
	}
	if p.Priority != nil {
		f.Priority = *p.Priority
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	return f.Normalize()
}
