package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/mocks"
	"github.com/consultrack/jobtrack-backend/internal/core/services"
)

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := svc.CreateJob(ctx, domain.JobParams{
			Title:         "Senior Go Developer",
			MarketingTeam: "Alpha",
			DateSubmitted: "2024-03-04",
		}, userID)

		require.NoError(t, err)
		assert.Equal(t, "Senior Go Developer", job.Title)
		assert.Equal(t, userID, job.UserID)
		assert.Equal(t, domain.StatusSubmittedToVendor, job.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		job, err := svc.CreateJob(ctx, domain.JobParams{Title: ""}, userID)

		assert.Nil(t, job)
		assert.ErrorIs(t, err, apperrors.ErrTitleRequired)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		job, err := svc.CreateJob(ctx, domain.JobParams{
			Title:  "Senior Go Developer",
			Status: "Ghosted",
		}, userID)

		assert.Nil(t, job)
		assert.ErrorIs(t, err, apperrors.ErrInvalidJobStatus)
	})
}

func TestJobService_GetJob(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	jobID := uuid.New()

	ownedJob := &domain.Job{ID: jobID, UserID: ownerID, Title: "SRE"}

	t.Run("owner can read", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("GetByID", ctx, jobID).Return(ownedJob, nil)

		job, err := svc.GetJob(ctx, jobID, ownerID)

		require.NoError(t, err)
		assert.Equal(t, jobID, job.ID)
	})

	t.Run("other users see not found", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("GetByID", ctx, jobID).Return(ownedJob, nil)

		job, err := svc.GetJob(ctx, jobID, uuid.New())

		assert.Nil(t, job)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	jobID := uuid.New()

	params := domain.JobParams{
		Title:         "Platform Engineer",
		Status:        domain.StatusInterviewL1,
		MarketingTeam: "Bravo",
		DateSubmitted: "2024-03-05",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		existing := &domain.Job{ID: jobID, UserID: ownerID, Title: "Old Title"}
		mockRepo.On("GetByID", ctx, jobID).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := svc.UpdateJob(ctx, jobID, params, ownerID)

		require.NoError(t, err)
		assert.Equal(t, "Platform Engineer", job.Title)
		assert.Equal(t, domain.StatusInterviewL1, job.Status)
		assert.NotNil(t, job.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		existing := &domain.Job{ID: jobID, UserID: ownerID}
		mockRepo.On("GetByID", ctx, jobID).Return(existing, nil)

		job, err := svc.UpdateJob(ctx, jobID, params, uuid.New())

		assert.Nil(t, job)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("GetByID", ctx, jobID).Return(nil, apperrors.ErrJobNotFound)

		_, err := svc.UpdateJob(ctx, jobID, params, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	jobID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("GetByID", ctx, jobID).Return(&domain.Job{ID: jobID, UserID: ownerID}, nil)
		mockRepo.On("Delete", ctx, jobID).Return(nil)

		require.NoError(t, svc.DeleteJob(ctx, jobID, ownerID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		mockRepo := mocks.NewMockJobRepository()
		svc := services.NewJobService(mockRepo)

		mockRepo.On("GetByID", ctx, jobID).Return(&domain.Job{ID: jobID, UserID: ownerID}, nil)

		err := svc.DeleteJob(ctx, jobID, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
