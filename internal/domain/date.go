package domain

import (
	"strings"
	"time"
)

// DateTBA is the label used when an event has no usable date.
const DateTBA = "TBA"

// EventDateLayout renders labels such as "24 Nov 2025".
const EventDateLayout = "02 Jan 2006"

var eventDateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseEventDate parses the raw date submitted with an event.
func ParseEventDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatEventDate returns the human-readable label for a raw event date, or DateTBA.
func FormatEventDate(raw string) string {
	t, ok := ParseEventDate(raw)
	if !ok {
		return DateTBA
	}
	return t.Format(EventDateLayout)
}
