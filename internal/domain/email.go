package domain

import (
	"context"
	"time"
)

// Message is a single send request to the email provider. Bcc recipients do not see each other.
type Message struct {
	To      []string
	Bcc     []string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// Branding is the organization identity rendered into every email and share message.
type Branding struct {
	Name         string
	URL          string
	LogoURL      string
	SupportPhone string
}

// EventInvitationEmailData holds data for the event announcement blast.
type EventInvitationEmailData struct {
	Recipients []string
	Title      string
	DateLabel  string
	ImageURL   string
	Body       string
}

// ContactEmailData holds data for the contact acknowledgement and the admin copy.
type ContactEmailData struct {
	Name    string
	Email   string
	Mobile  string
	Message string
}

// AdmissionEmailData holds data for the admission acknowledgement.
type AdmissionEmailData struct {
	Admission   *Admission
	Age         int
	SubmittedOn string
}

// ContactReplyEmailData holds data for an admin reply to a contact.
type ContactReplyEmailData struct {
	Email       string
	Message     string
	ContactedOn string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventInvitation(ctx context.Context, data *EventInvitationEmailData) error
	SendContactAcknowledgement(ctx context.Context, data *ContactEmailData) error
	SendContactAdminCopy(ctx context.Context, data *ContactEmailData) error
	SendAdmissionAcknowledgement(ctx context.Context, data *AdmissionEmailData) error
	SendContactReply(ctx context.Context, data *ContactReplyEmailData) error
}

// LongDateLayout is used for submission dates in emails ("January 2, 2006").
const LongDateLayout = "January 2, 2006"

// FormatLongDate formats t with LongDateLayout.
func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}

// Translator renders catalog messages used in outbound copy.
type Translator interface {
	T(locale, key string, data map[string]any) string
}
