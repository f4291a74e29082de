package services

import (
	"context"
	"fmt"
	"time"

	"communitysite/internal/domain"
)

type admissionService struct {
	repo           domain.AdmissionRepository
	emailService   domain.EmailService
	runner         domain.TaskRunner
	contextTimeout time.Duration
	now            func() time.Time
}

func NewAdmissionService(repo domain.AdmissionRepository, emailService domain.EmailService, runner domain.TaskRunner, timeout time.Duration) domain.AdmissionService {
	return &admissionService{
		repo:           repo,
		emailService:   emailService,
		runner:         runner,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// SubmitAdmission rejects applicants younger than domain.MinAdmissionAge with domain.ErrUnderage.
func (s *admissionService) SubmitAdmission(ctx context.Context, a *domain.Admission) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	if age := a.AgeOn(now); age < domain.MinAdmissionAge {
		return fmt.Errorf("%w: age %d, minimum %d", domain.ErrUnderage, age, domain.MinAdmissionAge)
	}
	a.Respond = false
	a.CreatedAt = now
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("persist admission: %w", err)
	}
	return nil
}

// AcknowledgeAdmission emails the submitter the details they sent. No admin copy is sent.
func (s *admissionService) AcknowledgeAdmission(ctx context.Context, a *domain.Admission) {
	data := &domain.AdmissionEmailData{
		Admission:   a,
		Age:         a.AgeOn(a.CreatedAt),
		SubmittedOn: domain.FormatLongDate(a.CreatedAt),
	}
	s.runner.Go(ctx, "admission_acknowledgement", func(ctx context.Context) error {
		return s.emailService.SendAdmissionAcknowledgement(ctx, data)
	})
}

func (s *admissionService) ListAdmissions(ctx context.Context) ([]*domain.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *admissionService) SetRespond(ctx context.Context, id string, respond bool) (*domain.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.SetRespond(ctx, id, respond)
}
