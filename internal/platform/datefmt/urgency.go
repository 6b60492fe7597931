package datefmt

import (
	"strings"
	"time"
)

// Urgency classifies how close a due date is.
type Urgency string

const (
	UrgencyNone     Urgency = ""
	UrgencyUrgent   Urgency = "urgent"
	UrgencyModerate Urgency = "moderate"
	UrgencyNormal   Urgency = "normal"
)

const (
	urgentWithinDays   = 7
	moderateWithinDays = 14
)

// DueDateUrgency classifies iso relative to now. Empty or unparsable input
// yields UrgencyNone.
func DueDateUrgency(iso string, now time.Time) Urgency {
	if strings.TrimSpace(iso) == "" {
		return UrgencyNone
	}
	due, err := ParseTimestamp(iso)
	if err != nil {
		return UrgencyNone
	}
	return UrgencyOf(due, now)
}

// UrgencyOf classifies an already parsed due date. Whole days until due are
// truncated toward zero, so anything overdue is urgent.
func UrgencyOf(due, now time.Time) Urgency {
	days := int64(due.Sub(now) / (24 * time.Hour))
	switch {
	case days <= urgentWithinDays:
		return UrgencyUrgent
	case days <= moderateWithinDays:
		return UrgencyModerate
	default:
		return UrgencyNormal
	}
}
