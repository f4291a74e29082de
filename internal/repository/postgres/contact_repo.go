package postgres

import (
	"context"
	"database/sql"

	"communitysite/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `
		INSERT INTO contacts (name, mobile, email, message, respond, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name, c.Mobile, c.Email, c.Message, c.Respond, c.CreatedAt).Scan(&c.ID)
}

func (r *contactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	query := `
		SELECT id, name, mobile, email, message, respond, created_at
		FROM contacts
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c := &domain.Contact{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Mobile, &c.Email, &c.Message, &c.Respond, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) SetRespond(ctx context.Context, id string, respond bool) (*domain.Contact, error) {
	query := `
		UPDATE contacts SET respond = $2
		WHERE id = $1
		RETURNING id, name, mobile, email, message, respond, created_at
	`
	c := &domain.Contact{}
	err := r.DB.QueryRowContext(ctx, query, id, respond).Scan(&c.ID, &c.Name, &c.Mobile, &c.Email, &c.Message, &c.Respond, &c.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}
