package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

const employerColumns = `id, user_id, name, contact_email, phone, address, created_at, updated_at`

type EmployerRepository struct {
	pool *pgxpool.Pool
}

var _ ports.EmployerRepository = (*EmployerRepository)(nil)

func NewEmployerRepository(pool *pgxpool.Pool) ports.EmployerRepository {
	return &EmployerRepository{pool: pool}
}

func (r *EmployerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	const query = `
INSERT INTO employers (id, user_id, name, contact_email, phone, address, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	_, err := r.pool.Exec(ctx, query,
		uuidParam(employer.ID),
		uuidParam(employer.UserID),
		employer.Name,
		employer.ContactEmail,
		employer.Phone,
		employer.Address,
		pgtype.Timestamptz{Time: employer.CreatedAt, Valid: true},
		timePtrParam(employer.UpdatedAt),
	)
	return err
}

func (r *EmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`

	employer, err := scanEmployer(r.pool.QueryRow(ctx, query, uuidParam(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, err
	}
	return employer, nil
}

func (r *EmployerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE user_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, uuidParam(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employers := make([]*domain.Employer, 0)
	for rows.Next() {
		employer, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		employers = append(employers, employer)
	}
	return employers, rows.Err()
}

func (r *EmployerRepository) Update(ctx context.Context, employer *domain.Employer) error {
	const query = `
UPDATE employers
SET name = $2, contact_email = $3, phone = $4, address = $5, updated_at = $6
WHERE id = $1
`

	tag, err := r.pool.Exec(ctx, query,
		uuidParam(employer.ID),
		employer.Name,
		employer.ContactEmail,
		employer.Phone,
		employer.Address,
		timePtrParam(employer.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployerNotFound
	}
	return nil
}

func (r *EmployerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employers WHERE id = $1`, uuidParam(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployerNotFound
	}
	return nil
}

func scanEmployer(row pgx.Row) (*domain.Employer, error) {
	var (
		id        pgtype.UUID
		userID    pgtype.UUID
		employer  domain.Employer
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &userID, &employer.Name, &employer.ContactEmail, &employer.Phone,
		&employer.Address, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	employer.ID = id.Bytes
	employer.UserID = userID.Bytes
	employer.CreatedAt = createdAt.Time
	employer.UpdatedAt = timePtrFromPG(updatedAt)
	return &employer, nil
}
