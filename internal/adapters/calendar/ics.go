package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"communitysite/internal/domain"
)

// ICSEncoder renders events as an iCalendar feed of all-day entries.
type ICSEncoder struct {
	productID string
	name      string
	domain    string
	now       func() time.Time
}

// NewICSEncoder returns a CalendarEncoder. siteName becomes the calendar name and
// uidDomain the right-hand side of every event UID.
func NewICSEncoder(siteName, uidDomain string) *ICSEncoder {
	return &ICSEncoder{
		productID: fmt.Sprintf("-//%s//Events//EN", siteName),
		name:      siteName,
		domain:    uidDomain,
		now:       time.Now,
	}
}

var _ domain.CalendarEncoder = (*ICSEncoder)(nil)

// Encode writes one VEVENT per event whose date parses. Events without a usable date are left out.
func (e *ICSEncoder) Encode(w io.Writer, events []*domain.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, e.productID)
	cal.Props.SetText("X-WR-CALNAME", e.name)

	stamp := e.now().UTC()
	for _, ev := range events {
		day, ok := domain.ParseEventDate(ev.Date)
		if !ok {
			continue
		}
		cal.Children = append(cal.Children, e.toVEvent(ev, day, stamp))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func (e *ICSEncoder) toVEvent(ev *domain.Event, day, stamp time.Time) *ical.Component {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, ev.ID+"@"+e.domain)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDate(ical.PropDateTimeStart, start)
	ve.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
	ve.Props.SetText(ical.PropSummary, ev.Title)
	if ev.Body != "" {
		ve.Props.SetText(ical.PropDescription, ev.Body)
	}
	if ev.Image != "" {
		attach := ical.NewProp(ical.PropAttach)
		attach.Value = ev.Image
		ve.Props.Add(attach)
	}
	return ve
}
