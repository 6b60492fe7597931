package todo

import (
	"time"

	domtodo "github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/datefmt"
)

// ToDomainTodo converts a remote TodoDTO to a domain Todo entity.
// Unparsable timestamps become nil (or zero for CreationDate) instead of
// failing the whole record.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	creationDate, _ := datefmt.ParseTimestamp(dto.CreationDate)

	return domtodo.Todo{
		ID:           dto.ID,
		Text:         dto.Text,
		Priority:     domtodo.Priority(dto.Priority),
		Done:         dto.Done,
		DueDate:      parseOptional(dto.DueDate),
		DoneDate:     parseOptional(dto.DoneDate),
		CreationDate: creationDate,
	}
}

// ToDomainPage converts a remote PageResponseDTO to a domain Page. A
// negative total is reported as zero.
func ToDomainPage(dto PageResponseDTO) domtodo.Page {
	todos := make([]domtodo.Todo, len(dto.Data))
	for i := range dto.Data {
		todos[i] = ToDomainTodo(&dto.Data[i])
	}
	return domtodo.Page{Todos: todos, TotalItems: int(max(dto.TotalItems, 0))}
}

// ToCreateTodoRequest converts a domain Draft to a remote CreateTodoRequestDTO.
func ToCreateTodoRequest(d *domtodo.Draft) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		Text:     d.Text,
		Priority: d.Priority.String(),
		DueDate:  formatOptional(d.DueDate),
	}
}

// ToUpdateTodoRequest converts a domain Patch to a remote UpdateTodoRequestDTO.
// Only the fields set on the patch are sent.
func ToUpdateTodoRequest(p *domtodo.Patch) UpdateTodoRequestDTO {
	var dto UpdateTodoRequestDTO
	if p.Text != nil {
		text := *p.Text
		dto.Text = &text
	}
	if p.Priority != nil {
		priority := p.Priority.String()
		dto.Priority = &priority
	}
	dto.DueDate = formatOptional(p.DueDate)
	return dto
}

func parseOptional(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := datefmt.ParseTimestamp(*s)
	if err != nil {
		return nil
	}
	return &t
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := datefmt.FormatLocalDateTime(*t)
	return &s
}
