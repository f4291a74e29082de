package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitysite/internal/domain"
)

func TestICSEncoder_Encode(t *testing.T) {
	enc := NewICSEncoder("Community Site", "community.example")
	enc.now = func() time.Time { return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) }

	events := []*domain.Event{
		{ID: "e1", Title: "Pongal Celebration", Body: "Join us", Date: "2026-01-14", Image: "https://cdn.example/p.png"},
		{ID: "e2", Title: "Someday", Date: "soon"},
		{ID: "e3", Title: "Annual Day", Date: "2025-11-24T18:30:00Z"},
	}

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, events))
	out := buf.String()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//Community Site//Events//EN")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:e1@community.example")
	assert.Contains(t, out, "SUMMARY:Pongal Celebration")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20260114")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20260115")
	assert.Contains(t, out, "ATTACH:https://cdn.example/p.png")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251124")
	assert.NotContains(t, out, "Someday")
}

func TestICSEncoder_RoundTrip(t *testing.T) {
	enc := NewICSEncoder("Community Site", "community.example")
	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, []*domain.Event{
		{ID: "e1", Title: "Music, Dance; Drama", Body: "line one\nline two", Date: "2026-03-01"},
	}))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	evs := cal.Events()
	require.Len(t, evs, 1)

	summary, err := evs[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Music, Dance; Drama", summary)

	desc, err := evs[0].Props.Text(ical.PropDescription)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", desc)

	start, err := evs[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
}
