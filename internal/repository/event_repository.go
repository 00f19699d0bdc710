package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// EventRepository defines persistence access for dance events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListUpcoming(ctx context.Context, limit, offset int) ([]*domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (name, description, venue, city, starts_at, ends_at, status, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.Name,
		event.Description,
		event.Venue,
		event.City,
		event.StartsAt,
		event.EndsAt,
		event.Status,
		event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET name=$1, description=$2, venue=$3, city=$4, starts_at=$5, ends_at=$6, status=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		event.Name,
		event.Description,
		event.Venue,
		event.City,
		event.StartsAt,
		event.EndsAt,
		event.Status,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const eventSelect = `
        SELECT id, name, description, venue, city, starts_at, ends_at, status, created_by, created_at, updated_at
        FROM events`

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return scanEvent(r.pool.QueryRow(ctx, eventSelect+` WHERE id=$1`, id))
}

func (r *eventRepository) ListUpcoming(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx,
		eventSelect+` WHERE status=$1 AND starts_at > NOW() ORDER BY starts_at LIMIT $2 OFFSET $3`,
		domain.EventStatusPublished, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	if err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Venue,
		&event.City,
		&event.StartsAt,
		&event.EndsAt,
		&event.Status,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}
