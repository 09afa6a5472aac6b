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

const jobColumns = `
id, user_id, title, job_location, my_location, status, vendor, client, end_client,
employer_id, date_submitted, job_description, marketing_team, hourly_rate, notes,
is_interview, created_at, updated_at`

type JobRepository struct {
	pool *pgxpool.Pool
}

var _ ports.JobRepository = (*JobRepository)(nil)

func NewJobRepository(pool *pgxpool.Pool) ports.JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
INSERT INTO jobs (id, user_id, title, job_location, my_location, status, vendor, client,
                  end_client, employer_id, date_submitted, job_description, marketing_team,
                  hourly_rate, notes, is_interview, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

	_, err := r.pool.Exec(ctx, query,
		uuidParam(job.ID),
		uuidParam(job.UserID),
		job.Title,
		job.JobLocation,
		job.MyLocation,
		string(job.Status),
		job.Vendor,
		job.Client,
		job.EndClient,
		uuidPtrParam(job.EmployerID),
		job.DateSubmitted,
		job.JobDescription,
		job.MarketingTeam,
		float64PtrParam(job.HourlyRate),
		job.Notes,
		job.IsInterview,
		pgtype.Timestamptz{Time: job.CreatedAt, Valid: true},
		timePtrParam(job.UpdatedAt),
	)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.pool.QueryRow(ctx, query, uuidParam(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, uuidParam(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
UPDATE jobs
SET title = $2, job_location = $3, my_location = $4, status = $5, vendor = $6,
    client = $7, end_client = $8, employer_id = $9, date_submitted = $10,
    job_description = $11, marketing_team = $12, hourly_rate = $13, notes = $14,
    is_interview = $15, updated_at = $16
WHERE id = $1
`

	tag, err := r.pool.Exec(ctx, query,
		uuidParam(job.ID),
		job.Title,
		job.JobLocation,
		job.MyLocation,
		string(job.Status),
		job.Vendor,
		job.Client,
		job.EndClient,
		uuidPtrParam(job.EmployerID),
		job.DateSubmitted,
		job.JobDescription,
		job.MarketingTeam,
		float64PtrParam(job.HourlyRate),
		job.Notes,
		job.IsInterview,
		timePtrParam(job.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, uuidParam(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		id         pgtype.UUID
		userID     pgtype.UUID
		job        domain.Job
		status     string
		employerID pgtype.UUID
		hourlyRate pgtype.Float8
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &userID, &job.Title, &job.JobLocation, &job.MyLocation, &status,
		&job.Vendor, &job.Client, &job.EndClient, &employerID, &job.DateSubmitted,
		&job.JobDescription, &job.MarketingTeam, &hourlyRate, &job.Notes,
		&job.IsInterview, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.ID = id.Bytes
	job.UserID = userID.Bytes
	job.Status = domain.JobStatus(status)
	job.EmployerID = uuidPtrFromPG(employerID)
	job.HourlyRate = float64PtrFromPG(hourlyRate)
	job.CreatedAt = createdAt.Time
	job.UpdatedAt = timePtrFromPG(updatedAt)
	return &job, nil
}
