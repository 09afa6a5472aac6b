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

const callColumns = `
id, user_id, name, vendor, phone_number, call_date, employer_id, job_id, notes,
marketing_team, created_at, updated_at`

type CallRepository struct {
	pool *pgxpool.Pool
}

var _ ports.CallRepository = (*CallRepository)(nil)

func NewCallRepository(pool *pgxpool.Pool) ports.CallRepository {
	return &CallRepository{pool: pool}
}

func (r *CallRepository) Create(ctx context.Context, call *domain.Call) error {
	const query = `
INSERT INTO calls (id, user_id, name, vendor, phone_number, call_date, employer_id, job_id,
                   notes, marketing_team, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

	_, err := r.pool.Exec(ctx, query,
		uuidParam(call.ID),
		uuidParam(call.UserID),
		call.Name,
		call.Vendor,
		call.PhoneNumber,
		call.Date,
		uuidPtrParam(call.EmployerID),
		uuidPtrParam(call.JobID),
		call.Notes,
		call.MarketingTeam,
		pgtype.Timestamptz{Time: call.CreatedAt, Valid: true},
		timePtrParam(call.UpdatedAt),
	)
	return err
}

func (r *CallRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls WHERE id = $1`

	call, err := scanCall(r.pool.QueryRow(ctx, query, uuidParam(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, err
	}
	return call, nil
}

func (r *CallRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, uuidParam(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := make([]*domain.Call, 0)
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, rows.Err()
}

func (r *CallRepository) Update(ctx context.Context, call *domain.Call) error {
	const query = `
UPDATE calls
SET name = $2, vendor = $3, phone_number = $4, call_date = $5, employer_id = $6,
    job_id = $7, notes = $8, marketing_team = $9, updated_at = $10
WHERE id = $1
`

	tag, err := r.pool.Exec(ctx, query,
		uuidParam(call.ID),
		call.Name,
		call.Vendor,
		call.PhoneNumber,
		call.Date,
		uuidPtrParam(call.EmployerID),
		uuidPtrParam(call.JobID),
		call.Notes,
		call.MarketingTeam,
		timePtrParam(call.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCallNotFound
	}
	return nil
}

func (r *CallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calls WHERE id = $1`, uuidParam(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCallNotFound
	}
	return nil
}

func scanCall(row pgx.Row) (*domain.Call, error) {
	var (
		id         pgtype.UUID
		userID     pgtype.UUID
		call       domain.Call
		employerID pgtype.UUID
		jobID      pgtype.UUID
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(&id, &userID, &call.Name, &call.Vendor, &call.PhoneNumber, &call.Date,
		&employerID, &jobID, &call.Notes, &call.MarketingTeam, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	call.ID = id.Bytes
	call.UserID = userID.Bytes
	call.EmployerID = uuidPtrFromPG(employerID)
	call.JobID = uuidPtrFromPG(jobID)
	call.CreatedAt = createdAt.Time
	call.UpdatedAt = timePtrFromPG(updatedAt)
	return &call, nil
}
