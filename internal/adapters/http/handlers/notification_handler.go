package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-view/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// defaultNotificationLimit caps GET /api/v1/notifications without ?limit.
const defaultNotificationLimit = 20

// NotificationHandler serves the recent notification feed.
type NotificationHandler struct {
	feed ports.NotificationFeed
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(feed ports.NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// ListNotifications handles GET /api/v1/notifications?limit=N.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, "limit", defaultNotificationLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNotificationListResponse(h.feed.Recent(limit)))
}
