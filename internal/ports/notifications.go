package ports

import (
	"context"
	"time"
)

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is a transient, user-facing message such as a toast.
type Notification struct {
	Level       NotificationLevel
	Title       string
	Description string
	Time        time.Time
}

// Notifier delivers notifications to the user. Delivery is fire and forget:
// implementations must not block the caller on slow consumers.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotificationFeed exposes recently delivered notifications, newest first.
type NotificationFeed interface {
	Recent(limit int) []Notification
}
