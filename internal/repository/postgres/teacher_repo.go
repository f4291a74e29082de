package postgres

import (
	"context"
	"database/sql"

	"communitysite/internal/domain"
)

type teacherRepository struct {
	DB *sql.DB
}

func NewTeacherRepository(db *sql.DB) domain.TeacherRepository {
	return &teacherRepository{DB: db}
}

func (r *teacherRepository) Create(ctx context.Context, t *domain.Teacher) error {
	query := `
		INSERT INTO teachers (name, position, email, image, place, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.Name, t.Position, t.Email, t.Image, t.Place, t.Description, t.CreatedAt).Scan(&t.ID)
}

func (r *teacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	query := `
		SELECT id, name, position, email, image, place, description, created_at
		FROM teachers
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	teachers := make([]*domain.Teacher, 0)
	for rows.Next() {
		t := &domain.Teacher{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Position, &t.Email, &t.Image, &t.Place, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *teacherRepository) Update(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error) {
	query := `
		UPDATE teachers SET name = $2, position = $3, email = $4, place = $5, description = $6
		WHERE id = $1
		RETURNING id, name, position, email, image, place, description, created_at
	`
	out := &domain.Teacher{}
	err := r.DB.QueryRowContext(ctx, query, t.ID, t.Name, t.Position, t.Email, t.Place, t.Description).Scan(
		&out.ID, &out.Name, &out.Position, &out.Email, &out.Image, &out.Place, &out.Description, &out.CreatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return out, nil
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.DB, `DELETE FROM teachers WHERE id = $1`, id)
}
