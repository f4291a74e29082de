package services

import (
	"context"
	"fmt"
	"log/slog"

	"communitysite/internal/domain"
)

// emailTemplateData is the value every email template is executed with.
type emailTemplateData struct {
	Site domain.Branding
	Data any
}

type emailService struct {
	mailer       domain.Mailer
	renderer     domain.EmailTemplateRenderer
	site         domain.Branding
	adminAddress string
	logger       *slog.Logger
}

// NewEmailService returns an EmailService that renders templates with the site branding and
// sends them through mailer. adminAddress receives contact copies; empty disables them.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, site domain.Branding, adminAddress string, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{
		mailer:       mailer,
		renderer:     renderer,
		site:         site,
		adminAddress: adminAddress,
		logger:       logger,
	}
}

// SendEventInvitation sends one message with every recipient as a blind copy.
// An empty recipient list sends nothing.
func (s *emailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("event invitation data is nil")
	}
	if len(data.Recipients) == 0 {
		s.logger.InfoContext(ctx, "event invitation skipped, no recipients", "title", data.Title)
		return nil
	}
	msg, err := s.render("event_invitation", data)
	if err != nil {
		return err
	}
	msg.Bcc = data.Recipients
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send event invitation: %w", err)
	}
	s.logger.InfoContext(ctx, "event invitation sent", "title", data.Title, "recipients", len(data.Recipients))
	return nil
}

func (s *emailService) SendContactAcknowledgement(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact data is nil")
	}
	return s.sendTo(ctx, "contact_ack", data.Email, data)
}

// SendContactAdminCopy forwards a contact submission to the admin address, if one is configured.
func (s *emailService) SendContactAdminCopy(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact data is nil")
	}
	if s.adminAddress == "" {
		s.logger.DebugContext(ctx, "contact admin copy skipped, no admin address")
		return nil
	}
	return s.sendTo(ctx, "contact_admin", s.adminAddress, data)
}

func (s *emailService) SendAdmissionAcknowledgement(ctx context.Context, data *domain.AdmissionEmailData) error {
	if data == nil || data.Admission == nil {
		return fmt.Errorf("admission data is nil")
	}
	return s.sendTo(ctx, "admission_ack", data.Admission.Email, data)
}

func (s *emailService) SendContactReply(ctx context.Context, data *domain.ContactReplyEmailData) error {
	if data == nil {
		return fmt.Errorf("contact reply data is nil")
	}
	return s.sendTo(ctx, "contact_reply", data.Email, data)
}

func (s *emailService) sendTo(ctx context.Context, template, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s: recipient address is empty", template)
	}
	msg, err := s.render(template, data)
	if err != nil {
		return err
	}
	msg.To = []string{to}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template, "to", to)
	return nil
}

func (s *emailService) render(template string, data any) (*domain.Message, error) {
	subject, htmlBody, textBody, err := s.renderer.Render(template, emailTemplateData{Site: s.site, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", template, err)
	}
	return &domain.Message{Subject: subject, HTML: htmlBody, Text: textBody}, nil
}
