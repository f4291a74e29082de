package postgres

import (
	"context"
	"database/sql"

	"communitysite/internal/domain"
)

const eventColumns = `id, title, body, date, image, home, sms, mail, created_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, body, date, image, home, sms, mail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Body, e.Date, e.Image, e.Home, e.SMS, e.Mail, e.CreatedAt).Scan(&e.ID)
}

// List returns every event in publication order.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at, id`)
}

// ListHome returns the events flagged for the homepage feed.
func (r *eventRepository) ListHome(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events WHERE home ORDER BY created_at, id`)
}

func (r *eventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Body, &e.Date, &e.Image, &e.Home, &e.SMS, &e.Mail, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.DB, `DELETE FROM events WHERE id = $1`, id)
}
