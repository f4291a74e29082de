package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// envelope decodes the standard response with data kept raw for per-test decoding.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	publishErr  error
	listErr     error
	deleteErr   error
	events      []*domain.Event
	shareURL    *string
	lastInput   *domain.PublishEventInput
	lastImage   []byte
	announced   []*domain.Event
	onAnnounce  func()
	lastDeleted string
}

func (f *fakeEventService) PublishEvent(ctx context.Context, in *domain.PublishEventInput) (*domain.EventPublication, error) {
	f.lastInput = in
	if in.Image != nil {
		f.lastImage, _ = io.ReadAll(in.Image.Body)
	}
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	e := &domain.Event{
		ID:    "ev-1",
		Title: in.Title,
		Body:  in.Body,
		Date:  in.Date,
		Home:  domain.Truthy(in.Home),
		SMS:   domain.Truthy(in.SMS),
		Mail:  domain.Truthy(in.Mail),
	}
	if in.Image != nil {
		e.Image = "https://cdn.example.org/events/" + in.Image.Filename
	}
	return &domain.EventPublication{Event: e, ShareURL: f.shareURL}, nil
}

func (f *fakeEventService) AnnounceEvent(ctx context.Context, event *domain.Event) {
	if f.onAnnounce != nil {
		f.onAnnounce()
	}
	f.announced = append(f.announced, event)
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.listErr
}

func (f *fakeEventService) ListHomeEvents(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.events {
		if e.Home {
			out = append(out, e)
		}
	}
	return out, f.listErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastDeleted = id
	return f.deleteErr
}

// fakeCalendar writes a marker per event.
type fakeCalendar struct {
	err error
}

func (f *fakeCalendar) Encode(w io.Writer, events []*domain.Event) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\n")
	for _, e := range events {
		_, _ = io.WriteString(w, "SUMMARY:"+e.Title+"\r\n")
	}
	_, _ = io.WriteString(w, "END:VCALENDAR\r\n")
	return err
}

// fakeGalleryService implements domain.GalleryService for handler tests.
type fakeGalleryService struct {
	err       error
	members   []*domain.GalleryMember
	lastID    string
	lastInput *domain.ProfileInput
}

func (f *fakeGalleryService) CreateMember(ctx context.Context, in *domain.ProfileInput) (*domain.GalleryMember, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	m := &domain.GalleryMember{ID: "gm-1", Name: in.Name, Email: in.Email, Position: in.Position, Description: in.Description}
	if in.Image != nil {
		m.Image = "https://cdn.example.org/gallery/" + in.Image.Filename
	}
	return m, nil
}

func (f *fakeGalleryService) ListMembers(ctx context.Context) ([]*domain.GalleryMember, error) {
	return f.members, f.err
}

func (f *fakeGalleryService) UpdateMember(ctx context.Context, id string, in *domain.ProfileInput) (*domain.GalleryMember, error) {
	f.lastID, f.lastInput = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.GalleryMember{ID: id, Name: in.Name, Position: in.Position}, nil
}

func (f *fakeGalleryService) DeleteMember(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeTeacherService implements domain.TeacherService for handler tests.
type fakeTeacherService struct {
	err       error
	lastID    string
	lastInput *domain.ProfileInput
}

func (f *fakeTeacherService) CreateTeacher(ctx context.Context, in *domain.ProfileInput) (*domain.Teacher, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Teacher{ID: "t-1", Name: in.Name, Place: in.Place, Image: "https://cdn.example.org/teacher/default.png"}, nil
}

func (f *fakeTeacherService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	return []*domain.Teacher{{ID: "t-1", Name: "Lakshmi"}}, f.err
}

func (f *fakeTeacherService) UpdateTeacher(ctx context.Context, id string, in *domain.ProfileInput) (*domain.Teacher, error) {
	f.lastID, f.lastInput = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Teacher{ID: id, Name: in.Name, Place: in.Place}, nil
}

func (f *fakeTeacherService) DeleteTeacher(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	submitErr    error
	respondErr   error
	replyErr     error
	submitted    *domain.Contact
	acknowledged []*domain.Contact
	onAck        func()
	lastReply    *domain.ContactReplyInput
	lastRespond  bool
}

func (f *fakeContactService) SubmitContact(ctx context.Context, c *domain.Contact) error {
	f.submitted = c
	if f.submitErr != nil {
		return f.submitErr
	}
	c.ID = "c-1"
	return nil
}

func (f *fakeContactService) AcknowledgeContact(ctx context.Context, c *domain.Contact) {
	if f.onAck != nil {
		f.onAck()
	}
	f.acknowledged = append(f.acknowledged, c)
}

func (f *fakeContactService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	return []*domain.Contact{{ID: "c-1", Name: "Priya"}}, nil
}

func (f *fakeContactService) SetRespond(ctx context.Context, id string, respond bool) (*domain.Contact, error) {
	f.lastRespond = respond
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	return &domain.Contact{ID: id, Respond: respond}, nil
}

func (f *fakeContactService) Reply(ctx context.Context, in *domain.ContactReplyInput) error {
	f.lastReply = in
	return f.replyErr
}

// fakeAdmissionService implements domain.AdmissionService for handler tests.
type fakeAdmissionService struct {
	submitErr    error
	submitted    *domain.Admission
	acknowledged []*domain.Admission
}

func (f *fakeAdmissionService) SubmitAdmission(ctx context.Context, a *domain.Admission) error {
	f.submitted = a
	if f.submitErr != nil {
		return f.submitErr
	}
	a.ID = "adm-1"
	return nil
}

func (f *fakeAdmissionService) AcknowledgeAdmission(ctx context.Context, a *domain.Admission) {
	f.acknowledged = append(f.acknowledged, a)
}

func (f *fakeAdmissionService) ListAdmissions(ctx context.Context) ([]*domain.Admission, error) {
	return []*domain.Admission{{ID: "adm-1"}}, nil
}

func (f *fakeAdmissionService) SetRespond(ctx context.Context, id string, respond bool) (*domain.Admission, error) {
	if id == "missing" {
		return nil, domain.ErrNotFound
	}
	return &domain.Admission{ID: id, Respond: respond}, nil
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	createErr  error
	loginErr   error
	deleteErr  error
	lastCreate *domain.CreateUserInput
	deleted    []string
	users      []*domain.User
}

func (f *fakeUserService) CreateUser(ctx context.Context, in *domain.CreateUserInput) (*domain.User, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.User{ID: "u-1", Email: in.Email, Role: "admin", PasswordHash: "secret-hash", Salt: "secret-salt"}, nil
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "jwt-token", &domain.User{ID: "u-1", Email: email}, nil
}

// fakeDraftService implements domain.DraftService for handler tests.
type fakeDraftService struct {
	text string
	err  error
}

func (f *fakeDraftService) Draft(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}
