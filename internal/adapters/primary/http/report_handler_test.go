package http

import (
	"encoding/json"
	"io"
	"log/slog"
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
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/mocks"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReportRouter(svc ports.ReportService) (stdhttp.Handler, *auth.TokenManager) {
	logger := testLogger()
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)
	handler := NewReportHandler(svc, NewErrorHandler(logger), logger)

	r := chi.NewRouter()
	r.Route("/reports", func(r chi.Router) {
		r.Use(mw.JWTMiddleware(tokenManager))
		handler.RegisterRoutes(r)
	})
	return r, tokenManager
}

func TestReportHandler_GenerateReport(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, tokenManager := newReportRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		mockSvc.On("GenerateReport", mock.Anything, ports.GenerateReportParams{
			UserID:   userID,
			Duration: "week",
			TimeZone: "America/Chicago",
		}).Return(&report.Result{
			TotalJobs:   3,
			TotalCalls:  1,
			JobsByTeam:  map[string]int{"Alpha": 3},
			CallsByTeam: map[string]int{"Bravo": 1},
			DailyBreakdown: []report.DailyBucket{
				{Date: "2024-03-04", Jobs: 2, Calls: 1},
				{Date: "2024-03-05", Jobs: 1},
			},
			Summary: report.Summary{PeakJobs: 2, PeakCalls: 1, AvgJobsPerDay: 1.5, AvgCallsPerDay: 0.5},
		}, nil)

		req := httptest.NewRequest(stdhttp.MethodGet, "/reports?duration=week&timeZone=America/Chicago", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusOK, recorder.Code)

		var response ReportResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, 3, response.TotalJobs)
		assert.Equal(t, 1, response.TotalCalls)
		assert.Equal(t, map[string]int{"Alpha": 3}, response.JobsByTeam)
		assert.Len(t, response.DailyBreakdown, 2)
		assert.InDelta(t, 1.5, response.Summary.AvgJobsPerDay, 1e-9)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing duration", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, tokenManager := newReportRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		req := httptest.NewRequest(stdhttp.MethodGet, "/reports", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)
		mockSvc.AssertNotCalled(t, "GenerateReport")
	})

	t.Run("custom without bounds", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, tokenManager := newReportRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		req := httptest.NewRequest(stdhttp.MethodGet, "/reports?duration=custom", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)
		mockSvc.AssertNotCalled(t, "GenerateReport")
	})

	t.Run("bad time zone", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, tokenManager := newReportRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		req := httptest.NewRequest(stdhttp.MethodGet, "/reports?duration=week&timeZone=Nowhere/Fake", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("reversed custom bounds map to bad request", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, tokenManager := newReportRouter(mockSvc)

		token, err := tokenManager.GenerateToken(userID, "consultant")
		require.NoError(t, err)

		mockSvc.On("GenerateReport", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidDateOrder)

		req := httptest.NewRequest(stdhttp.MethodGet,
			"/reports?duration=custom&fromDate=2024-03-05&toDate=2024-03-04", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusBadRequest, recorder.Code)

		var response ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, "INVALID_DATE_ORDER", response.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := mocks.NewMockReportService()
		router, _ := newReportRouter(mockSvc)

		req := httptest.NewRequest(stdhttp.MethodGet, "/reports?duration=week", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		require.Equal(t, stdhttp.StatusUnauthorized, recorder.Code)
	})
}
