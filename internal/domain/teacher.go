package domain

import (
	"context"
	"time"
)

// Teacher is an entry of the public teacher roster.
// swagger:model Teacher
type Teacher struct {
	ID          string    `json:"id"`
	Name        string    `json:"mname"`
	Position    string    `json:"position"`
	Email       string    `json:"email"`
	Image       string    `json:"image"`
	Place       string    `json:"place"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeacherRepository defines the interface for teacher storage.
type TeacherRepository interface {
	Create(ctx context.Context, t *Teacher) error
	List(ctx context.Context) ([]*Teacher, error)
	Update(ctx context.Context, t *Teacher) (*Teacher, error)
	Delete(ctx context.Context, id string) error
}

// TeacherService defines teacher roster management.
type TeacherService interface {
	CreateTeacher(ctx context.Context, in *ProfileInput) (*Teacher, error)
	ListTeachers(ctx context.Context) ([]*Teacher, error)
	UpdateTeacher(ctx context.Context, id string, in *ProfileInput) (*Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}
