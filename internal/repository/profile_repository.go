package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// ProfileRepository defines persistence access for role profiles.
type ProfileRepository interface {
	CreateStylist(ctx context.Context, profile *domain.StylistProfile) error
	CreateDancer(ctx context.Context, profile *domain.DancerProfile) error
	GetStylistByUserID(ctx context.Context, userID string) (*domain.StylistProfile, error)
	ListStylists(ctx context.Context, limit, offset int) ([]*domain.StylistProfile, error)
	SetStripeAccount(ctx context.Context, profileID, stripeAccountID string) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) CreateStylist(ctx context.Context, profile *domain.StylistProfile) error {
	const query = `
        INSERT INTO stylist_profiles (user_id, display_name, bio, specialties, hourly_rate_cents)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.Bio,
		profile.Specialties,
		profile.HourlyRateCents,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) CreateDancer(ctx context.Context, profile *domain.DancerProfile) error {
	const query = `
        INSERT INTO dancer_profiles (user_id, display_name, dance_styles)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.DanceStyles,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

const stylistSelect = `
        SELECT id, user_id, display_name, bio, specialties, hourly_rate_cents, stripe_account_id, created_at, updated_at
        FROM stylist_profiles`

func (r *profileRepository) GetStylistByUserID(ctx context.Context, userID string) (*domain.StylistProfile, error) {
	return scanStylist(r.pool.QueryRow(ctx, stylistSelect+` WHERE user_id=$1`, userID))
}

func (r *profileRepository) ListStylists(ctx context.Context, limit, offset int) ([]*domain.StylistProfile, error) {
	rows, err := r.pool.Query(ctx, stylistSelect+` ORDER BY display_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.StylistProfile
	for rows.Next() {
		profile, err := scanStylist(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) SetStripeAccount(ctx context.Context, profileID, stripeAccountID string) error {
	const query = `UPDATE stylist_profiles SET stripe_account_id=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, stripeAccountID, profileID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStylist(row pgx.Row) (*domain.StylistProfile, error) {
	var profile domain.StylistProfile
	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DisplayName,
		&profile.Bio,
		&profile.Specialties,
		&profile.HourlyRateCents,
		&profile.StripeAccountID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
