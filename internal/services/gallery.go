package services

import (
	"context"
	"fmt"
	"time"

	"communitysite/internal/domain"
)

type galleryService struct {
	repo           domain.GalleryRepository
	uploader       domain.MediaUploader
	contextTimeout time.Duration
	now            func() time.Time
}

func NewGalleryService(repo domain.GalleryRepository, uploader domain.MediaUploader, timeout time.Duration) domain.GalleryService {
	return &galleryService{repo: repo, uploader: uploader, contextTimeout: timeout, now: time.Now}
}

func (s *galleryService) CreateMember(ctx context.Context, in *domain.ProfileInput) (*domain.GalleryMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	image := ""
	if in.Image != nil {
		u, err := s.uploader.Upload(ctx, domain.MediaGallery, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload member image: %w", err)
		}
		image = u
	}
	m := &domain.GalleryMember{
		Name:        in.Name,
		Position:    in.Position,
		Email:       in.Email,
		Image:       image,
		Description: in.Description,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("persist member: %w", err)
	}
	return m, nil
}

func (s *galleryService) ListMembers(ctx context.Context) ([]*domain.GalleryMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

// UpdateMember replaces the text fields of a member. The stored image is kept.
func (s *galleryService) UpdateMember(ctx context.Context, id string, in *domain.ProfileInput) (*domain.GalleryMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Update(ctx, &domain.GalleryMember{
		ID:          id,
		Name:        in.Name,
		Position:    in.Position,
		Email:       in.Email,
		Description: in.Description,
	})
}

func (s *galleryService) DeleteMember(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
