package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/consultrack/jobtrack-backend/internal/adapters/primary/http/middleware"
	"github.com/consultrack/jobtrack-backend/internal/adapters/primary/validation"
	"github.com/consultrack/jobtrack-backend/internal/auth"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

// ReportHandler handles HTTP requests for activity reports
type ReportHandler struct {
	reportService ports.ReportService
	errorHandler  *ErrorHandler
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ports.ReportService, errorHandler *ErrorHandler, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		errorHandler:  errorHandler,
		logger:        logger.With("handler", "report"),
	}
}

// RegisterRoutes sets up the routing for the report endpoints.
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleGenerateReport)
}

// ReportResponse defines the JSON response for a generated report.
type ReportResponse struct {
	StartDate      string               `json:"startDate"`
	EndDate        string               `json:"endDate"`
	TotalJobs      int                  `json:"totalJobs"`
	TotalCalls     int                  `json:"totalCalls"`
	JobsByTeam     map[string]int       `json:"jobsByMarketingTeam"`
	CallsByTeam    map[string]int       `json:"callsByMarketingTeam"`
	DailyBreakdown []report.DailyBucket `json:"dailyBreakdown"`
	Summary        report.Summary       `json:"summary"`
}

func toReportResponse(result *report.Result) ReportResponse {
	return ReportResponse{
		StartDate:      result.Range.Start.Format("2006-01-02"),
		EndDate:        result.Range.End.Format("2006-01-02"),
		TotalJobs:      result.TotalJobs,
		TotalCalls:     result.TotalCalls,
		JobsByTeam:     result.JobsByTeam,
		CallsByTeam:    result.CallsByTeam,
		DailyBreakdown: result.DailyBreakdown,
		Summary:        result.Summary,
	}
}

// HandleGenerateReport handles GET /reports
func (h *ReportHandler) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	duration := query.Get("duration")
	fromDate := query.Get("fromDate")
	toDate := query.Get("toDate")
	timeZone := query.Get("timeZone")

	v := validation.NewValidator()
	v.Required("duration", duration).
		OneOf("duration", duration, []string{"today", "yesterday", "week", "month", "custom"})
	v.RequiredIf("fromDate", fromDate, duration == "custom", "fromDate is required for custom ranges")
	v.RequiredIf("toDate", toDate, duration == "custom", "toDate is required for custom ranges")
	v.Date("fromDate", fromDate)
	v.Date("toDate", toDate)
	v.TimeZone("timeZone", timeZone)

	if v.HasErrors() {
		h.errorHandler.Handle(w, r, v.Errors())
		return
	}

	result, err := h.reportService.GenerateReport(r.Context(), ports.GenerateReportParams{
		UserID:   claims.UserID,
		Duration: duration,
		FromDate: fromDate,
		ToDate:   toDate,
		TimeZone: timeZone,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("report generated",
		"user_id", claims.UserID,
		"duration", duration,
		"total_jobs", result.TotalJobs,
		"total_calls", result.TotalCalls,
	)

	WriteJSON(w, http.StatusOK, toReportResponse(result))
}

func (h *ReportHandler) getClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := mw.GetClaims(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: "Not authorized",
			Code:  "UNAUTHORIZED",
		})
		return nil, false
	}
	return claims, true
}
