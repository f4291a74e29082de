package domain

import (
	"context"
	"time"
)

// Contact is a message left through the public contact form.
// swagger:model Contact
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Respond   bool      `json:"respond"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContact returns an unanswered contact. ID is set by the repository on create.
func NewContact(name, mobile, email, message string, createdAt time.Time) *Contact {
	return &Contact{
		Name:      name,
		Mobile:    mobile,
		Email:     email,
		Message:   message,
		CreatedAt: createdAt,
	}
}

// ContactReplyInput is an admin reply to a contact submission.
type ContactReplyInput struct {
	ToEmail string
	Message string
	Date    string // date of the original contact, as stored
}

// ContactRepository defines the interface for contact storage.
type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context) ([]*Contact, error)
	SetRespond(ctx context.Context, id string, respond bool) (*Contact, error)
}

// ContactService defines the contact workflow.
type ContactService interface {
	// SubmitContact persists a contact. Call AcknowledgeContact after responding to the caller.
	SubmitContact(ctx context.Context, c *Contact) error
	// AcknowledgeContact schedules the acknowledgement and admin copy emails in the background.
	AcknowledgeContact(ctx context.Context, c *Contact)
	ListContacts(ctx context.Context) ([]*Contact, error)
	SetRespond(ctx context.Context, id string, respond bool) (*Contact, error)
	// Reply sends an admin reply synchronously; provider errors are returned to the caller.
	Reply(ctx context.Context, in *ContactReplyInput) error
}
