package domain

import (
	"context"
	"io"
	"time"
)

// Event is an announcement published from the admin dashboard.
// Field names follow the stored record: event, post, date, image and the three flags.
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"event"`
	Body      string    `json:"post"`
	Date      string    `json:"date"`
	Image     string    `json:"image"`
	Home      bool      `json:"home"`
	SMS       bool      `json:"sms"`
	Mail      bool      `json:"mail"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, body, date, image string, home, sms, mail bool, createdAt time.Time) *Event {
	return &Event{
		Title:     title,
		Body:      body,
		Date:      date,
		Image:     image,
		Home:      home,
		SMS:       sms,
		Mail:      mail,
		CreatedAt: createdAt,
	}
}

// DateLabel is the formatted date used in share text and emails.
func (e *Event) DateLabel() string {
	return FormatEventDate(e.Date)
}

// PublishEventInput is an event-creation request as received by the delivery layer.
// Home, SMS and Mail hold the raw submitted values (JSON booleans/numbers or form strings).
type PublishEventInput struct {
	Title string
	Body  string
	Date  string
	Home  any
	SMS   any
	Mail  any
	Image *Upload
}

// EventPublication is the result of a successful publication: the stored event and,
// when requested, a messaging-app share link.
// swagger:model EventPublication
type EventPublication struct {
	*Event
	ShareURL *string `json:"share_url"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	ListHome(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the publication workflow and event reads.
type EventService interface {
	// PublishEvent normalizes flags, uploads the image, persists the event and builds the share link.
	PublishEvent(ctx context.Context, in *PublishEventInput) (*EventPublication, error)
	// AnnounceEvent schedules the email blast for a published event. It never blocks on delivery.
	AnnounceEvent(ctx context.Context, event *Event)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListHomeEvents(ctx context.Context) ([]*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// CalendarEncoder writes events as a calendar feed.
type CalendarEncoder interface {
	Encode(w io.Writer, events []*Event) error
}
