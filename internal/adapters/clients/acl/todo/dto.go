// Package todo implements the Anti-Corruption Layer translators for the
// remote todo API's todo resources.
package todo

// TodoDTO matches the remote Todo schema. Timestamps are ISO-8601 local
// date-times without a zone (e.g. "2024-03-20T10:00:00") or RFC 3339.
type TodoDTO struct {
	ID           int64   `json:"id"`
	Text         string  `json:"text"`
	Priority     string  `json:"priority"`
	Done         bool    `json:"done"`
	DueDate      *string `json:"dueDate"`
	DoneDate     *string `json:"doneDate"`
	CreationDate string  `json:"creationDate"`
}

// PageResponseDTO matches the remote paged list response.
type PageResponseDTO struct {
	Data       []TodoDTO `json:"data"`
	TotalItems int64     `json:"totalItems"`
}

// CreateTodoRequestDTO matches the body accepted by POST /todos. The remote
// API assigns id, done, doneDate and creationDate.
type CreateTodoRequestDTO struct {
	Text     string  `json:"text"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate"`
}

// UpdateTodoRequestDTO matches the body accepted by PUT /todos/{id}.
// All fields are optional; nil means "do not change this field.".
type UpdateTodoRequestDTO struct {
	Text     *string `json:"text,omitempty"`
	Priority *string `json:"priority,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// StatusChangeRequestDTO is the empty object sent to the done/undone endpoints.
type StatusChangeRequestDTO struct{}
