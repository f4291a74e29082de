package services

import (
	"context"
	"fmt"
	"time"

	"communitysite/internal/domain"
)

type teacherService struct {
	repo           domain.TeacherRepository
	uploader       domain.MediaUploader
	defaultImage   string
	contextTimeout time.Duration
	now            func() time.Time
}

// NewTeacherService returns a TeacherService. defaultImage is stored for teachers created without a photo.
func NewTeacherService(repo domain.TeacherRepository, uploader domain.MediaUploader, defaultImage string, timeout time.Duration) domain.TeacherService {
	return &teacherService{
		repo:           repo,
		uploader:       uploader,
		defaultImage:   defaultImage,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *teacherService) CreateTeacher(ctx context.Context, in *domain.ProfileInput) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	image := s.defaultImage
	if in.Image != nil {
		u, err := s.uploader.Upload(ctx, domain.MediaTeachers, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload teacher image: %w", err)
		}
		image = u
	}
	t := &domain.Teacher{
		Name:        in.Name,
		Position:    in.Position,
		Email:       in.Email,
		Image:       image,
		Place:       in.Place,
		Description: in.Description,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("persist teacher: %w", err)
	}
	return t, nil
}

func (s *teacherService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *teacherService) UpdateTeacher(ctx context.Context, id string, in *domain.ProfileInput) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Update(ctx, &domain.Teacher{
		ID:          id,
		Name:        in.Name,
		Position:    in.Position,
		Email:       in.Email,
		Place:       in.Place,
		Description: in.Description,
	})
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
