package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) ports.UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
INSERT INTO users (id, full_name, email, hashed_password, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

	_, err := r.pool.Exec(ctx, query,
		uuidParam(user.ID),
		user.FullName,
		user.Email,
		user.HashedPassword,
		user.Role,
		user.IsActive,
		pgtype.Timestamptz{Time: user.CreatedAt, Valid: true},
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
SELECT id, full_name, email, hashed_password, role, is_active, created_at
FROM users
WHERE id = $1
`
	return r.scanUser(r.pool.QueryRow(ctx, query, uuidParam(id)))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
SELECT id, full_name, email, hashed_password, role, is_active, created_at
FROM users
WHERE email = $1
`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id        pgtype.UUID
		user      domain.User
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &user.FullName, &user.Email, &user.HashedPassword, &user.Role, &user.IsActive, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.ID = id.Bytes
	user.CreatedAt = createdAt.Time
	return &user, nil
}
