package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// UserRepository defines persistence access for accounts. It satisfies
// auth.UserStore.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, password_hash, role, first_name, last_name)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FirstName,
		user.LastName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, password_hash=$2, role=$3, first_name=$4, last_name=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FirstName,
		user.LastName,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// userSelect pulls the account row with its role profile display names in
// one round trip so login stays a single lookup.
const userSelect = `
        SELECT u.id, u.email, u.password_hash, u.role, u.first_name, u.last_name,
               u.created_at, u.updated_at,
               sp.id, sp.display_name,
               dp.id, dp.display_name
        FROM users u
        LEFT JOIN stylist_profiles sp ON sp.user_id = u.id
        LEFT JOIN dancer_profiles dp ON dp.user_id = u.id`

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, userSelect+` WHERE u.id=$1`, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, userSelect+` WHERE u.email=$1`, email))
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, userSelect+` ORDER BY u.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var (
		user                    domain.User
		stylistID, dancerID     *string
		stylistName, dancerName *string
	)
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
		&stylistID,
		&stylistName,
		&dancerID,
		&dancerName,
	); err != nil {
		return nil, err
	}
	if stylistID != nil {
		user.StylistProfile = &domain.StylistProfile{ID: *stylistID, UserID: user.ID}
		if stylistName != nil {
			user.StylistProfile.DisplayName = *stylistName
		}
	}
	if dancerID != nil {
		user.DancerProfile = &domain.DancerProfile{ID: *dancerID, UserID: user.ID}
		if dancerName != nil {
			user.DancerProfile.DisplayName = *dancerName
		}
	}
	return &user, nil
}
