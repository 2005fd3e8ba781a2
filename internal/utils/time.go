package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// travel datetimes come from datetime-local inputs or hand-typed values.
var travelLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	layoutDateTime,
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseTravelDateTime accepts the datetime formats the add-travel form may
// send, in local timezone.
func ParseTravelDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range travelLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02 15:04")
}
