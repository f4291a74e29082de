package services

import (
	"context"
	"fmt"
	"time"

	"communitysite/internal/domain"
)

type contactService struct {
	repo           domain.ContactRepository
	emailService   domain.EmailService
	runner         domain.TaskRunner
	contextTimeout time.Duration
	now            func() time.Time
}

func NewContactService(repo domain.ContactRepository, emailService domain.EmailService, runner domain.TaskRunner, timeout time.Duration) domain.ContactService {
	return &contactService{
		repo:           repo,
		emailService:   emailService,
		runner:         runner,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *contactService) SubmitContact(ctx context.Context, c *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c.Respond = false
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("persist contact: %w", err)
	}
	return nil
}

// AcknowledgeContact sends the submitter a copy of their message and forwards it to the admin.
// Both sends run in the background and fail independently.
func (s *contactService) AcknowledgeContact(ctx context.Context, c *domain.Contact) {
	data := &domain.ContactEmailData{
		Name:    c.Name,
		Email:   c.Email,
		Mobile:  c.Mobile,
		Message: c.Message,
	}
	s.runner.Go(ctx, "contact_acknowledgement", func(ctx context.Context) error {
		return s.emailService.SendContactAcknowledgement(ctx, data)
	})
	s.runner.Go(ctx, "contact_admin_copy", func(ctx context.Context) error {
		return s.emailService.SendContactAdminCopy(ctx, data)
	})
}

func (s *contactService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *contactService) SetRespond(ctx context.Context, id string, respond bool) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.SetRespond(ctx, id, respond)
}

// Reply emails an admin answer to a contact. The original contact date is shown
// in long form when it parses and verbatim otherwise.
func (s *contactService) Reply(ctx context.Context, in *domain.ContactReplyInput) error {
	if in == nil || in.ToEmail == "" {
		return fmt.Errorf("%w: recipient email is required", domain.ErrInvalidInput)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	contactedOn := in.Date
	if t, ok := domain.ParseEventDate(in.Date); ok {
		contactedOn = domain.FormatLongDate(t)
	}
	return s.emailService.SendContactReply(ctx, &domain.ContactReplyEmailData{
		Email:       in.ToEmail,
		Message:     in.Message,
		ContactedOn: contactedOn,
	})
}
