package domain

import (
	"context"
	"time"
)

// GalleryMember is a member shown in the public gallery. Member emails double as the
// mailing list for event announcements.
// swagger:model GalleryMember
type GalleryMember struct {
	ID          string    `json:"id"`
	Name        string    `json:"mname"`
	Position    string    `json:"position"`
	Email       string    `json:"email"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileInput carries the text fields shared by gallery members and teachers.
type ProfileInput struct {
	Name        string
	Position    string
	Email       string
	Place       string
	Description string
	Image       *Upload
}

// GalleryRepository defines the interface for gallery member storage.
type GalleryRepository interface {
	Create(ctx context.Context, m *GalleryMember) error
	List(ctx context.Context) ([]*GalleryMember, error)
	ListEmails(ctx context.Context) ([]string, error)
	Update(ctx context.Context, m *GalleryMember) (*GalleryMember, error)
	Delete(ctx context.Context, id string) error
}

// GalleryService defines gallery member management.
type GalleryService interface {
	CreateMember(ctx context.Context, in *ProfileInput) (*GalleryMember, error)
	ListMembers(ctx context.Context) ([]*GalleryMember, error)
	UpdateMember(ctx context.Context, id string, in *ProfileInput) (*GalleryMember, error)
	DeleteMember(ctx context.Context, id string) error
}
