package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mw "github.com/consultrack/jobtrack-backend/internal/adapters/primary/http/middleware"
	"github.com/consultrack/jobtrack-backend/internal/auth"
	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/mocks"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

func newJobRouter(svc ports.JobService) (stdhttp.Handler, *auth.TokenManager) {
	logger := testLogger()
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)
	handler := NewJobHandler(svc, NewErrorHandler(logger), logger)

	r := chi.NewRouter()
	r.Route("/jobs", func(r chi.Router) {
		r.Use(mw.JWTMiddleware(tokenManager))
		handler.RegisterRoutes(r)
	})
	return r, tokenManager
}

func TestJobHandler_CreateJob(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := mocks.NewMockJobService()
		router, tokenManager := newJobRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		created := &domain.Job{
			ID:            uuid.New(),
			UserID:        userID,
			Title:         "Senior Go Developer",
			Status:        domain.StatusSubmittedToVendor,
			MarketingTeam: "Alpha",
			DateSubmitted: "2024-03-04",
			CreatedAt:     time.Now().UTC(),
		}
		mockSvc.On("CreateJob", mock.Anything, mock.AnythingOfType("domain.JobParams"), userID).
			Return(created, nil)

		body, _ := json.Marshal(JobRequest{
			Title:         "Senior Go Developer",
			MarketingTeam: "Alpha",
			DateSubmitted: "2024-03-04",
		})

		req := httptest.NewRequest(stdhttp.MethodPost, "/jobs", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusCreated, recorder.Code)

		var response JobDTO
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, created.ID.String(), response.ID)
		assert.Equal(t, "Senior Go Developer", response.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		mockSvc := mocks.NewMockJobService()
		router, tokenManager := newJobRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		body, _ := json.Marshal(JobRequest{MarketingTeam: "Alpha"})

		req := httptest.NewRequest(stdhttp.MethodPost, "/jobs", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)
		mockSvc.AssertNotCalled(t, "CreateJob")
	})
}

func TestJobHandler_ListMyJobs(t *testing.T) {
	userID := uuid.New()

	mockSvc := mocks.NewMockJobService()
	router, tokenManager := newJobRouter(mockSvc)

	token, err := tokenManager.GenerateToken(userID, "consultant")
	require.NoError(t, err)

	mockSvc.On("ListMyJobs", mock.Anything, userID).Return([]*domain.Job{
		{ID: uuid.New(), UserID: userID, Title: "SRE", Status: domain.StatusPhoneScreening, CreatedAt: time.Now().UTC()},
	}, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/jobs/mine", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var response ListResponse[JobDTO]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "SRE", response.Data[0].Title)
}

func TestJobHandler_GetJob_NotFound(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	mockSvc := mocks.NewMockJobService()
	router, tokenManager := newJobRouter(mockSvc)

	token, err := tokenManager.GenerateToken(userID, "consultant")
	require.NoError(t, err)

	mockSvc.On("GetJob", mock.Anything, jobID, userID).Return(nil, apperrors.ErrJobNotFound)

	req := httptest.NewRequest(stdhttp.MethodGet, "/jobs/"+jobID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusNotFound, recorder.Code)
}

func TestJobHandler_DeleteJob(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	mockSvc := mocks.NewMockJobService()
	router, tokenManager := newJobRouter(mockSvc)

	token, err := tokenManager.GenerateToken(userID, "consultant")
	require.NoError(t, err)

	mockSvc.On("DeleteJob", mock.Anything, jobID, userID).Return(nil)

	req := httptest.NewRequest(stdhttp.MethodDelete, "/jobs/"+jobID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusNoContent, recorder.Code)
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_InvalidJobID(t *testing.T) {
	userID := uuid.New()

	mockSvc := mocks.NewMockJobService()
	router, tokenManager := newJobRouter(mockSvc)

	token, err := tokenManager.GenerateToken(userID, "consultant")
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodGet, "/jobs/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)
	mockSvc.AssertNotCalled(t, "GetJob")
}
