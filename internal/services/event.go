package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"communitysite/internal/domain"
)

const (
	shareBaseURL = "https://wa.me/?text="
	shareLocale  = "en"
)

type eventService struct {
	eventRepo      domain.EventRepository
	galleryRepo    domain.GalleryRepository
	uploader       domain.MediaUploader
	emailService   domain.EmailService
	translator     domain.Translator
	runner         domain.TaskRunner
	site           domain.Branding
	contextTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// EventServiceDeps groups the collaborators of the publication workflow.
type EventServiceDeps struct {
	Events     domain.EventRepository
	Gallery    domain.GalleryRepository
	Uploader   domain.MediaUploader
	Email      domain.EmailService
	Translator domain.Translator
	Runner     domain.TaskRunner
	Site       domain.Branding
	Timeout    time.Duration
	Logger     *slog.Logger
}

func NewEventService(deps EventServiceDeps) domain.EventService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &eventService{
		eventRepo:      deps.Events,
		galleryRepo:    deps.Gallery,
		uploader:       deps.Uploader,
		emailService:   deps.Email,
		translator:     deps.Translator,
		runner:         deps.Runner,
		site:           deps.Site,
		contextTimeout: deps.Timeout,
		logger:         logger,
		now:            time.Now,
	}
}

// PublishEvent uploads the image (if any), stores the event and, when the share intent is set,
// builds the messaging-app link. A failed upload aborts before anything is stored.
func (s *eventService) PublishEvent(ctx context.Context, in *domain.PublishEventInput) (*domain.EventPublication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	home := domain.Truthy(in.Home)
	sms := domain.Truthy(in.SMS)
	mail := domain.Truthy(in.Mail)

	imageURL := ""
	if in.Image != nil {
		u, err := s.uploader.Upload(ctx, domain.MediaEvents, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload event image: %w", err)
		}
		imageURL = u
	}

	event := domain.NewEvent(in.Title, in.Body, in.Date, imageURL, home, sms, mail, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("persist event: %w", err)
	}

	pub := &domain.EventPublication{Event: event}
	if event.SMS {
		link := s.shareLink(event)
		pub.ShareURL = &link
	}
	return pub, nil
}

// AnnounceEvent hands the email blast to the background runner when the mail intent is set.
func (s *eventService) AnnounceEvent(ctx context.Context, event *domain.Event) {
	if event == nil || !event.Mail {
		return
	}
	data := &domain.EventInvitationEmailData{
		Title:     event.Title,
		DateLabel: event.DateLabel(),
		ImageURL:  event.Image,
		Body:      event.Body,
	}
	s.runner.Go(ctx, "event_announcement", func(ctx context.Context) error {
		recipients, err := s.galleryRepo.ListEmails(ctx)
		if err != nil {
			return fmt.Errorf("load mailing list: %w", err)
		}
		if len(recipients) == 0 {
			s.logger.InfoContext(ctx, "no gallery members to notify", "event_id", event.ID)
			return nil
		}
		data.Recipients = recipients
		return s.emailService.SendEventInvitation(ctx, data)
	})
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.List(ctx)
}

func (s *eventService) ListHomeEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.ListHome(ctx)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.Delete(ctx, id)
}

// shareLink returns the wa.me deep link that pre-fills the announcement for event.
func (s *eventService) shareLink(event *domain.Event) string {
	t := func(key string, data map[string]any) string {
		return s.translator.T(shareLocale, key, data)
	}
	msg := t("share.header", map[string]any{"SiteName": s.site.Name}) + "\n\n" +
		t("share.event", map[string]any{"Title": event.Title}) + "\n" +
		t("share.date", map[string]any{"Date": event.DateLabel()}) + "\n\n" +
		event.Image + "\n\n" +
		event.Body + "\n\n" +
		t("share.visit", map[string]any{"SiteURL": s.site.URL})
	return shareBaseURL + encodeURIComponent(msg)
}

// encodeURIComponent percent-encodes s for use inside a query value, spaces as %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
