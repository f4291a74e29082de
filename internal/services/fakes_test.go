package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"communitysite/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events []*domain.Event
	nextID int
	err    error // if set, every method returns this error
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]*domain.Event{}, f.events...), nil
}

func (f *fakeEventRepo) ListHome(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Event{}
	for _, e := range f.events {
		if e.Home {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeGalleryRepo is an in-memory GalleryRepository for tests.
type fakeGalleryRepo struct {
	mu       sync.Mutex
	members  []*domain.GalleryMember
	nextID   int
	err      error
	emailErr error // if set, ListEmails returns this
}

func (f *fakeGalleryRepo) Create(ctx context.Context, m *domain.GalleryMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	m.ID = fmt.Sprintf("gm-%d", f.nextID)
	f.members = append(f.members, m)
	return nil
}

func (f *fakeGalleryRepo) List(ctx context.Context) ([]*domain.GalleryMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.GalleryMember{}, f.members...), f.err
}

func (f *fakeGalleryRepo) ListEmails(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	out := []string{}
	for _, m := range f.members {
		if m.Email != "" {
			out = append(out, m.Email)
		}
	}
	return out, nil
}

func (f *fakeGalleryRepo) Update(ctx context.Context, m *domain.GalleryMember) (*domain.GalleryMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cur := range f.members {
		if cur.ID == m.ID {
			cur.Name, cur.Position, cur.Email, cur.Description = m.Name, m.Position, m.Email, m.Description
			return cur, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGalleryRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeUploader records uploads and returns a URL derived from the category and filename.
type fakeUploader struct {
	calls []domain.MediaCategory
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, category domain.MediaCategory, file *domain.Upload) (string, error) {
	f.calls = append(f.calls, category)
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.org/" + string(category) + "/" + file.Filename, nil
}

// fakeEmailService is a concurrency-safe test double for EmailService.
type fakeEmailService struct {
	mu            sync.Mutex
	invitations   []*domain.EventInvitationEmailData
	contactAcks   []*domain.ContactEmailData
	adminCopies   []*domain.ContactEmailData
	admissionAcks []*domain.AdmissionEmailData
	replies       []*domain.ContactReplyEmailData
	err           error
	block         chan struct{} // if set, every send waits for it to close
}

func (f *fakeEmailService) wait(ctx context.Context) error {
	if f.block == nil {
		return nil
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeEmailService) record(ctx context.Context, add func()) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	add()
	return nil
}

func (f *fakeEmailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	return f.record(ctx, func() { f.invitations = append(f.invitations, data) })
}

func (f *fakeEmailService) SendContactAcknowledgement(ctx context.Context, data *domain.ContactEmailData) error {
	return f.record(ctx, func() { f.contactAcks = append(f.contactAcks, data) })
}

func (f *fakeEmailService) SendContactAdminCopy(ctx context.Context, data *domain.ContactEmailData) error {
	return f.record(ctx, func() { f.adminCopies = append(f.adminCopies, data) })
}

func (f *fakeEmailService) SendAdmissionAcknowledgement(ctx context.Context, data *domain.AdmissionEmailData) error {
	return f.record(ctx, func() { f.admissionAcks = append(f.admissionAcks, data) })
}

func (f *fakeEmailService) SendContactReply(ctx context.Context, data *domain.ContactReplyEmailData) error {
	return f.record(ctx, func() { f.replies = append(f.replies, data) })
}

func (f *fakeEmailService) snapshot() (inv, acks, admin, adm int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.invitations), len(f.contactAcks), len(f.adminCopies), len(f.admissionAcks)
}

// fakeMailer records messages passed to Send.
type fakeMailer struct {
	mu   sync.Mutex
	sent []*domain.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeRenderer echoes the template name into the subject.
type fakeRenderer struct {
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	f.lastData = data
	return "subject:" + name, "<p>" + name + "</p>", name, nil
}
