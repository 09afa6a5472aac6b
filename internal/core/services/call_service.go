package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// CallService implements call record business logic, scoped per user.
type CallService struct {
	callRepo ports.CallRepository
}

var _ ports.CallService = (*CallService)(nil)

// NewCallService creates a new call service
func NewCallService(callRepo ports.CallRepository) *CallService {
	return &CallService{callRepo: callRepo}
}

func (s *CallService) CreateCall(ctx context.Context, params domain.CallParams, userID uuid.UUID) (*domain.Call, error) {
	call, err := domain.NewCall(params, userID)
	if err != nil {
		return nil, err
	}

	if err := s.callRepo.Create(ctx, call); err != nil {
		return nil, err
	}
	return call, nil
}

func (s *CallService) ListMyCalls(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error) {
	return s.callRepo.ListByUser(ctx, userID)
}

func (s *CallService) UpdateCall(ctx context.Context, callID uuid.UUID, params domain.CallParams, actorID uuid.UUID) (*domain.Call, error) {
	call, err := s.callRepo.GetByID(ctx, callID)
	if err != nil {
		return nil, err
	}
	if !call.IsOwnedBy(actorID) {
		return nil, apperrors.ErrCallNotFound
	}

	if err := call.Apply(params); err != nil {
		return nil, err
	}

	if err := s.callRepo.Update(ctx, call); err != nil {
		return nil, err
	}
	return call, nil
}

func (s *CallService) DeleteCall(ctx context.Context, callID, actorID uuid.UUID) error {
	call, err := s.callRepo.GetByID(ctx, callID)
	if err != nil {
		return err
	}
	if !call.IsOwnedBy(actorID) {
		return apperrors.ErrCallNotFound
	}
	return s.callRepo.Delete(ctx, callID)
}
