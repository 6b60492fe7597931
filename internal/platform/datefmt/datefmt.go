// Package datefmt converts remote API timestamps into display strings and
// classifies due dates. Functions here never return parse errors to callers
// that only need a display value; they fall back to sentinels instead.
package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// InvalidDate is shown in place of a date that could not be parsed.
const InvalidDate = "Invalid date"

// DisplayLayout renders dates as "Mar 20, 2024".
const DisplayLayout = "Jan 2, 2006"

// LocalDateTimeLayout is the zone-less form the remote API reads and writes.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// zoneless layouts are interpreted in time.Local.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses RFC 3339 timestamps and the zone-less ISO date-times
// and dates emitted by the remote API.
func ParseTimestamp(iso string) (time.Time, error) {
	s := strings.TrimSpace(iso)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse timestamp: empty input")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unrecognised format", iso)
}

// FormatLocalDateTime renders t without a zone, in t's own location.
func FormatLocalDateTime(t time.Time) string {
	return t.Format(LocalDateTimeLayout)
}

// FormatDate returns "" for empty input, the display form for a valid
// timestamp, and InvalidDate otherwise.
func FormatDate(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return ""
	}
	t, err := ParseTimestamp(iso)
	if err != nil {
		return InvalidDate
	}
	return t.Format(DisplayLayout)
}

// FormatTime is FormatDate for an already parsed value. A nil time yields
// "" and a zero time, left behind by an unparsable input, yields InvalidDate.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.IsZero() {
		return InvalidDate
	}
	return t.Format(DisplayLayout)
}

// RelativeTime describes t relative to now, e.g. "3 days from now".
func RelativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatMinutesToDuration renders a minute count as "1d 2h 5m", omitting
// zero components. Zero renders as "0m"; negative counts keep a leading "-".
func FormatMinutesToDuration(minutes int64) string {
	if minutes == 0 {
		return "0m"
	}

	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}

	const (
		minutesPerHour = 60
		minutesPerDay  = 24 * minutesPerHour
	)

	days := minutes / minutesPerDay
	hours := (minutes % minutesPerDay) / minutesPerHour
	mins := minutes % minutesPerHour

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, strconv.FormatInt(days, 10)+"d")
	}
	if hours > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if mins > 0 {
		parts = append(parts, strconv.FormatInt(mins, 10)+"m")
	}
	return sign + strings.Join(parts, " ")
}
