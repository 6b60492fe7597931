// Package notify is the outbound notification adapter. It logs every
// notification and keeps a bounded in-memory feed that presentation layers
// poll to display toasts.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/todo-view/internal/platform/logging"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

// DefaultCapacity is used when the configured capacity is not positive.
const DefaultCapacity = 50

// Compile-time interface checks.
var (
	_ ports.Notifier         = (*Feed)(nil)
	_ ports.NotificationFeed = (*Feed)(nil)
)

// Feed implements ports.Notifier and ports.NotificationFeed. Once full, the
// oldest notification is evicted for each new one.
type Feed struct {
	mu       sync.Mutex
	buf      []ports.Notification
	next     int
	full     bool
	capacity int
	logger   *slog.Logger
}

// NewFeed creates a Feed retaining at most capacity notifications.
func NewFeed(capacity int, logger *slog.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		buf:      make([]ports.Notification, capacity),
		capacity: capacity,
		logger:   logging.OrDiscard(logger),
	}
}

// Notify records n and logs it. It never blocks on readers.
func (f *Feed) Notify(ctx context.Context, n ports.Notification) {
	level := slog.LevelInfo
	if n.Level == ports.NotificationError {
		level = slog.LevelWarn
	}
	f.logger.Log(ctx, level, "notification",
		slog.String("level", string(n.Level)),
		slog.String("title", n.Title),
		slog.String("description", n.Description),
	)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = n
	f.next = (f.next + 1) % f.capacity
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to limit notifications, newest first. A non-positive
// limit returns everything retained.
func (f *Feed) Recent(limit int) []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	size := f.next
	if f.full {
		size = f.capacity
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]ports.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + f.capacity) % f.capacity
		out = append(out, f.buf[idx])
	}
	return out
}

// Len reports how many notifications are retained.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.full {
		return f.capacity
	}
	return f.next
}
