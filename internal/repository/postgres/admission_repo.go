package postgres

import (
	"context"
	"database/sql"

	"communitysite/internal/domain"
)

const admissionColumns = `id, fullname, civil_id_no, dob, address, phone, email, gender, course, location, school, grade, respond, created_at`

type admissionRepository struct {
	DB *sql.DB
}

func NewAdmissionRepository(db *sql.DB) domain.AdmissionRepository {
	return &admissionRepository{DB: db}
}

func (r *admissionRepository) Create(ctx context.Context, a *domain.Admission) error {
	query := `
		INSERT INTO admissions (fullname, civil_id_no, dob, address, phone, email, gender, course, location, school, grade, respond, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.FullName, a.CivilIDNo, a.DOB, a.Address, a.Phone, a.Email, a.Gender,
		a.Course, a.Location, a.School, a.Grade, a.Respond, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *admissionRepository) List(ctx context.Context) ([]*domain.Admission, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+admissionColumns+` FROM admissions ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	admissions := make([]*domain.Admission, 0)
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, a)
	}
	return admissions, rows.Err()
}

func (r *admissionRepository) SetRespond(ctx context.Context, id string, respond bool) (*domain.Admission, error) {
	query := `UPDATE admissions SET respond = $2 WHERE id = $1 RETURNING ` + admissionColumns
	a, err := scanAdmission(r.DB.QueryRowContext(ctx, query, id, respond))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmission(row rowScanner) (*domain.Admission, error) {
	a := &domain.Admission{}
	err := row.Scan(
		&a.ID, &a.FullName, &a.CivilIDNo, &a.DOB, &a.Address, &a.Phone, &a.Email, &a.Gender,
		&a.Course, &a.Location, &a.School, &a.Grade, &a.Respond, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
