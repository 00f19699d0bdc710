package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// BookingRepository defines persistence access for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByDancer(ctx context.Context, dancerID string, limit, offset int) ([]*domain.Booking, error)
	ListByStylist(ctx context.Context, stylistID string, limit, offset int) ([]*domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (event_id, dancer_id, stylist_id, status, note, price_cents)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		booking.EventID,
		booking.DancerID,
		booking.StylistID,
		booking.Status,
		booking.Note,
		booking.PriceCents,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

const bookingSelect = `
        SELECT id, event_id, dancer_id, stylist_id, status, note, price_cents, created_at, updated_at
        FROM bookings`

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx, bookingSelect+` WHERE id=$1`, id))
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	const query = `UPDATE bookings SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) ListByDancer(ctx context.Context, dancerID string, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, bookingSelect+` WHERE dancer_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, dancerID, limit, offset)
}

func (r *bookingRepository) ListByStylist(ctx context.Context, stylistID string, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, bookingSelect+` WHERE stylist_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, stylistID, limit, offset)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	if err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.DancerID,
		&booking.StylistID,
		&booking.Status,
		&booking.Note,
		&booking.PriceCents,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}
