// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/datefmt"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses. Raw timestamps
// use the zone-less layout of the remote API; the formatted fields are ready
// for display.
type TodoResponse struct {
	ID           int64   `json:"id"`
	Text         string  `json:"text"`
	Priority     string  `json:"priority"`
	Done         bool    `json:"done"`
	DueDate      *string `json:"dueDate"`
	DoneDate     *string `json:"doneDate"`
	CreationDate string  `json:"creationDate"`

	FormattedDueDate      string `json:"formattedDueDate"`
	FormattedDoneDate     string `json:"formattedDoneDate"`
	FormattedCreationDate string `json:"formattedCreationDate"`
	Urgency               string `json:"urgency,omitempty"`
	DueRelative           string `json:"dueRelative,omitempty"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO. now anchors
// urgency and the relative due string.
func ToTodoResponse(t *todo.Todo, now time.Time) TodoResponse {
	resp := TodoResponse{
		ID:                    t.ID,
		Text:                  t.Text,
		Priority:              t.Priority.String(),
		Done:                  t.Done,
		DueDate:               localDateTime(t.DueDate),
		DoneDate:              localDateTime(t.DoneDate),
		FormattedDueDate:      datefmt.FormatTime(t.DueDate),
		FormattedDoneDate:     datefmt.FormatTime(t.DoneDate),
		FormattedCreationDate: datefmt.FormatTime(&t.CreationDate),
	}
	if !t.CreationDate.IsZero() {
		resp.CreationDate = datefmt.FormatLocalDateTime(t.CreationDate)
	}
	if t.DueDate != nil {
		resp.Urgency = string(datefmt.UrgencyOf(*t.DueDate, now))
		resp.DueRelative = datefmt.RelativeTime(*t.DueDate, now)
	}
	return resp
}

// FilterResponse mirrors todo.Filter.
type FilterResponse struct {
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// SortKeyResponse is one key of the composite sort.
type SortKeyResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// SortResponse carries the composite sort both as the wire string and as
// its ordered keys.
type SortResponse struct {
	SortBy string            `json:"sortBy"`
	Keys   []SortKeyResponse `json:"keys"`
}

// PaginationResponse mirrors todo.Pagination plus the derived page count.
type PaginationResponse struct {
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// DurationResponse is a minute count with its display form.
type DurationResponse struct {
	Minutes   int64  `json:"minutes"`
	Formatted string `json:"formatted"`
}

// MetricsResponse represents the completion-time snapshot.
type MetricsResponse struct {
	AverageTime DurationResponse            `json:"averageTime"`
	ByPriority  map[string]DurationResponse `json:"byPriority"`
	UpdatedAt   string                      `json:"updatedAt,omitempty"`
	Loading     bool                        `json:"loading"`
}

// ViewResponse represents the whole view state.
type ViewResponse struct {
	Todos      []TodoResponse     `json:"todos"`
	Loading    bool               `json:"loading"`
	Error      string             `json:"error,omitempty"`
	Filters    FilterResponse     `json:"filters"`
	Sort       SortResponse       `json:"sort"`
	Pagination PaginationResponse `json:"pagination"`
	Metrics    MetricsResponse    `json:"metrics"`
	UpdatedAt  string             `json:"updatedAt,omitempty"`
}

// ToViewResponse converts a view snapshot to an HTTP response DTO.
func ToViewResponse(s *ports.ViewState, now time.Time) ViewResponse {
	todos := make([]TodoResponse, len(s.Todos))
	for i := range s.Todos {
		todos[i] = ToTodoResponse(&s.Todos[i], now)
	}

	keys := s.Sort.Keys()
	sortKeys := make([]SortKeyResponse, len(keys))
	for i, k := range keys {
		sortKeys[i] = SortKeyResponse{Field: string(k.Field), Direction: string(k.Direction)}
	}

	return ViewResponse{
		Todos:   todos,
		Loading: s.Loading,
		Error:   s.Error,
		Filters: FilterResponse{
			Text:     s.Filter.Text,
			Priority: s.Filter.Priority.String(),
			Status:   s.Filter.Status.String(),
		},
		Sort: SortResponse{SortBy: s.Sort.String(), Keys: sortKeys},
		Pagination: PaginationResponse{
			PageSize:    s.Pagination.PageSize,
			CurrentPage: s.Pagination.CurrentPage,
			TotalItems:  s.Pagination.TotalItems,
			TotalPages:  s.Pagination.TotalPages(),
		},
		Metrics:   ToMetricsResponse(s),
		UpdatedAt: rfc3339(s.UpdatedAt),
	}
}

// ToMetricsResponse extracts the metrics part of a view snapshot.
func ToMetricsResponse(s *ports.ViewState) MetricsResponse {
	byPriority := make(map[string]DurationResponse, len(todo.Priorities()))
	for _, p := range todo.Priorities() {
		byPriority[p.String()] = duration(s.Metrics.ByPriority[p])
	}
	return MetricsResponse{
		AverageTime: duration(s.Metrics.AverageTime),
		ByPriority:  byPriority,
		UpdatedAt:   rfc3339(s.MetricsUpdatedAt),
		Loading:     s.MetricsLoading,
	}
}

// NotificationResponse represents one user-facing notification.
type NotificationResponse struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// NotificationListResponse represents the recent notifications, newest first.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

// ToNotificationListResponse converts notifications to an HTTP response DTO.
func ToNotificationListResponse(ns []ports.Notification) NotificationListResponse {
	items := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		items[i] = NotificationResponse{
			Level:       string(n.Level),
			Title:       n.Title,
			Description: n.Description,
			Time:        rfc3339(n.Time),
		}
	}
	return NotificationListResponse{Notifications: items, Count: len(items)}
}

func duration(minutes int64) DurationResponse {
	return DurationResponse{Minutes: minutes, Formatted: datefmt.FormatMinutesToDuration(minutes)}
}

func localDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := datefmt.FormatLocalDateTime(*t)
	return &s
}

func rfc3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
