package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// EmployerService implements employer business logic, scoped per user.
type EmployerService struct {
	employerRepo ports.EmployerRepository
}

var _ ports.EmployerService = (*EmployerService)(nil)

// NewEmployerService creates a new employer service
func NewEmployerService(employerRepo ports.EmployerRepository) *EmployerService {
	return &EmployerService{employerRepo: employerRepo}
}

func (s *EmployerService) CreateEmployer(ctx context.Context, params domain.EmployerParams, userID uuid.UUID) (*domain.Employer, error) {
	employer, err := domain.NewEmployer(params, userID)
	if err != nil {
		return nil, err
	}

	if err := s.employerRepo.Create(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}

func (s *EmployerService) ListMyEmployers(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error) {
	return s.employerRepo.ListByUser(ctx, userID)
}

func (s *EmployerService) UpdateEmployer(ctx context.Context, employerID uuid.UUID, params domain.EmployerParams, actorID uuid.UUID) (*domain.Employer, error) {
	employer, err := s.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if !employer.IsOwnedBy(actorID) {
		return nil, apperrors.ErrEmployerNotFound
	}

	if err := employer.Apply(params); err != nil {
		return nil, err
	}

	if err := s.employerRepo.Update(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}

func (s *EmployerService) DeleteEmployer(ctx context.Context, employerID, actorID uuid.UUID) error {
	employer, err := s.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return err
	}
	if !employer.IsOwnedBy(actorID) {
		return apperrors.ErrEmployerNotFound
	}
	return s.employerRepo.Delete(ctx, employerID)
}
