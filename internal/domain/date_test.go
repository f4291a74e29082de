package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEventDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-11-24", "24 Nov 2025"},
		{"2026-01-14", "14 Jan 2026"},
		{"2026-03-05", "05 Mar 2026"},
		{"2025-11-24T18:30:00Z", "24 Nov 2025"},
		{"2025-11-24T18:30", "24 Nov 2025"},
		{" 2025-11-24 ", "24 Nov 2025"},
		{"", DateTBA},
		{"next friday", DateTBA},
		{"2025-13-40", DateTBA},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEventDate(tt.raw))
		})
	}
}

func TestEvent_DateLabel(t *testing.T) {
	e := NewEvent("Pongal Celebration", "Join us", "2026-01-14", "", true, true, false, time.Now())
	assert.Equal(t, "14 Jan 2026", e.DateLabel())
	e.Date = ""
	assert.Equal(t, "TBA", e.DateLabel())
}

func TestAgeOn(t *testing.T) {
	dob := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"day before birthday", time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), 4},
		{"on birthday", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 5},
		{"later month", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 5},
		{"earlier month", time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC), 4},
		{"before birth", time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeOn(dob, tt.day))
		})
	}
	assert.Equal(t, 0, AgeOn(time.Time{}, time.Now()))
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "November 24, 2025", FormatLongDate(time.Date(2025, time.November, 24, 10, 0, 0, 0, time.UTC)))
}
