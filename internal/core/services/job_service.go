package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// JobService implements the business logic around job submissions. Every
// read and write is scoped to the owning user; there is no cross-user
// visibility.
type JobService struct {
	jobRepo ports.JobRepository
}

var _ ports.JobService = (*JobService)(nil)

// NewJobService creates a new job service
func NewJobService(jobRepo ports.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJob validates and persists a new submission for the user.
func (s *JobService) CreateJob(ctx context.Context, params domain.JobParams, userID uuid.UUID) (*domain.Job, error) {
	job, err := domain.NewJob(params, userID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob fetches a single job, enforcing ownership.
func (s *JobService) GetJob(ctx context.Context, jobID, viewerID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsOwnedBy(viewerID) {
		// Hide the record's existence from other users.
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

// ListMyJobs returns every submission the user owns.
func (s *JobService) ListMyJobs(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error) {
	return s.jobRepo.ListByUser(ctx, userID)
}

// UpdateJob applies new field values to an owned job.
func (s *JobService) UpdateJob(ctx context.Context, jobID uuid.UUID, params domain.JobParams, actorID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsOwnedBy(actorID) {
		return nil, apperrors.ErrJobNotFound
	}

	if err := job.Apply(params); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes an owned job.
func (s *JobService) DeleteJob(ctx context.Context, jobID, actorID uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !job.IsOwnedBy(actorID) {
		return apperrors.ErrJobNotFound
	}
	return s.jobRepo.Delete(ctx, jobID)
}
