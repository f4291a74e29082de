package postgres

import (
	"context"
	"database/sql"

	"communitysite/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Create(ctx context.Context, m *domain.GalleryMember) error {
	query := `
		INSERT INTO gallery_members (name, position, email, image, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Name, m.Position, m.Email, m.Image, m.Description, m.CreatedAt).Scan(&m.ID)
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryMember, error) {
	query := `
		SELECT id, name, position, email, image, description, created_at
		FROM gallery_members
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]*domain.GalleryMember, 0)
	for rows.Next() {
		m := &domain.GalleryMember{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Email, &m.Image, &m.Description, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListEmails returns the non-empty member addresses, the mailing list for event announcements.
func (r *galleryRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT email FROM gallery_members WHERE btrim(email) <> '' ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	emails := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// Update overwrites the text fields of a member; the image is left unchanged.
func (r *galleryRepository) Update(ctx context.Context, m *domain.GalleryMember) (*domain.GalleryMember, error) {
	query := `
		UPDATE gallery_members SET name = $2, position = $3, email = $4, description = $5
		WHERE id = $1
		RETURNING id, name, position, email, image, description, created_at
	`
	out := &domain.GalleryMember{}
	err := r.DB.QueryRowContext(ctx, query, m.ID, m.Name, m.Position, m.Email, m.Description).Scan(
		&out.ID, &out.Name, &out.Position, &out.Email, &out.Image, &out.Description, &out.CreatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.DB, `DELETE FROM gallery_members WHERE id = $1`, id)
}
