package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	mw "github.com/consultrack/jobtrack-backend/internal/adapters/primary/http/middleware"
	"github.com/consultrack/jobtrack-backend/internal/adapters/primary/validation"
	"github.com/consultrack/jobtrack-backend/internal/auth"
	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
)

// JobHandler handles HTTP requests for job submissions
type JobHandler struct {
	jobService   ports.JobService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService ports.JobService, errorHandler *ErrorHandler, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobService:   jobService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "job"),
	}
}

// RegisterRoutes sets up the routing for all job endpoints.
func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Get("/mine", h.HandleListMyJobs)
	r.Post("/", h.HandleCreateJob)

	r.Route("/{jobID}", func(r chi.Router) {
		r.Get("/", h.HandleGetJob)
		r.Put("/", h.HandleUpdateJob)
		r.Delete("/", h.HandleDeleteJob)
	})
}

// --- Request/Response DTOs ---

// JobRequest defines the expected JSON body for creating or updating a job
type JobRequest struct {
	Title          string   `json:"title"`
	JobLocation    string   `json:"jobLocation"`
	MyLocation     string   `json:"myLocation"`
	Status         string   `json:"status"`
	Vendor         string   `json:"vendor"`
	Client         string   `json:"client"`
	EndClient      string   `json:"endClient"`
	EmployerID     *string  `json:"employerId"`
	DateSubmitted  string   `json:"dateSubmitted"`
	JobDescription string   `json:"jobDescription"`
	MarketingTeam  string   `json:"marketingTeam"`
	HourlyRate     *float64 `json:"hourlyRate"`
	Notes          string   `json:"notes"`
	IsInterview    bool     `json:"isInterview"`
}

// Validate validates the job request
func (r *JobRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("title", r.Title).
		MaxLength("title", r.Title, domain.MaxTitleLength)

	statuses := make([]string, len(domain.JobStatuses))
	for i, s := range domain.JobStatuses {
		statuses[i] = string(s)
	}
	v.OneOf("status", r.Status, statuses)

	if r.EmployerID != nil {
		v.UUID("employerId", *r.EmployerID)
	}

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

func (r *JobRequest) toParams() (domain.JobParams, error) {
	var employerID *uuid.UUID
	if r.EmployerID != nil && *r.EmployerID != "" {
		id, err := uuid.Parse(*r.EmployerID)
		if err != nil {
			return domain.JobParams{}, err
		}
		employerID = &id
	}

	return domain.JobParams{
		Title:          r.Title,
		JobLocation:    r.JobLocation,
		MyLocation:     r.MyLocation,
		Status:         domain.JobStatus(r.Status),
		Vendor:         r.Vendor,
		Client:         r.Client,
		EndClient:      r.EndClient,
		EmployerID:     employerID,
		DateSubmitted:  r.DateSubmitted,
		JobDescription: r.JobDescription,
		MarketingTeam:  r.MarketingTeam,
		HourlyRate:     r.HourlyRate,
		Notes:          r.Notes,
		IsInterview:    r.IsInterview,
	}, nil
}

// JobDTO defines the JSON response for jobs.
type JobDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	JobLocation    string   `json:"jobLocation,omitempty"`
	MyLocation     string   `json:"myLocation,omitempty"`
	Status         string   `json:"status"`
	Vendor         string   `json:"vendor,omitempty"`
	Client         string   `json:"client,omitempty"`
	EndClient      string   `json:"endClient,omitempty"`
	EmployerID     *string  `json:"employerId"`
	DateSubmitted  string   `json:"dateSubmitted"`
	JobDescription string   `json:"jobDescription,omitempty"`
	MarketingTeam  string   `json:"marketingTeam,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate"`
	Notes          string   `json:"notes,omitempty"`
	IsInterview    bool     `json:"isInterview"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      *string  `json:"updatedAt"`
}

func toJobDTO(job *domain.Job) JobDTO {
	var employerID *string
	if job.EmployerID != nil {
		value := job.EmployerID.String()
		employerID = &value
	}

	var updatedAt *string
	if job.UpdatedAt != nil {
		value := job.UpdatedAt.Format(time.RFC3339)
		updatedAt = &value
	}

	return JobDTO{
		ID:             job.ID.String(),
		Title:          job.Title,
		JobLocation:    job.JobLocation,
		MyLocation:     job.MyLocation,
		Status:         string(job.Status),
		Vendor:         job.Vendor,
		Client:         job.Client,
		EndClient:      job.EndClient,
		EmployerID:     employerID,
		DateSubmitted:  job.DateSubmitted,
		JobDescription: job.JobDescription,
		MarketingTeam:  job.MarketingTeam,
		HourlyRate:     job.HourlyRate,
		Notes:          job.Notes,
		IsInterview:    job.IsInterview,
		CreatedAt:      job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      updatedAt,
	}
}

func toJobDTOs(jobs []*domain.Job) []JobDTO {
	response := make([]JobDTO, 0, len(jobs))
	for _, job := range jobs {
		response = append(response, toJobDTO(job))
	}
	return response
}

// --- Handlers ---

// HandleListMyJobs handles GET /jobs/mine
func (h *JobHandler) HandleListMyJobs(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMyJobs(r.Context(), claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteList(w, toJobDTOs(jobs))
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	req, err := validation.DecodeAndValidate[JobRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), params, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("job created",
		"job_id", job.ID,
		"user_id", claims.UserID,
	)

	WriteCreated(w, toJobDTO(job))
}

// HandleGetJob handles GET /jobs/{jobID}
func (h *JobHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	jobID, err := h.parseJobID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	job, err := h.jobService.GetJob(r.Context(), jobID, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toJobDTO(job))
}

// HandleUpdateJob handles PUT /jobs/{jobID}
func (h *JobHandler) HandleUpdateJob(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	jobID, err := h.parseJobID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[JobRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	job, err := h.jobService.UpdateJob(r.Context(), jobID, params, claims.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("job updated",
		"job_id", jobID,
		"user_id", claims.UserID,
	)

	WriteJSON(w, http.StatusOK, toJobDTO(job))
}

// HandleDeleteJob handles DELETE /jobs/{jobID}
func (h *JobHandler) HandleDeleteJob(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	jobID, err := h.parseJobID(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.jobService.DeleteJob(r.Context(), jobID, claims.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("job deleted",
		"job_id", jobID,
		"user_id", claims.UserID,
	)

	WriteNoContent(w)
}

// --- Helper methods ---

func (h *JobHandler) getClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
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

func (h *JobHandler) parseJobID(r *http.Request) (uuid.UUID, error) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		v := validation.NewValidator()
		v.Custom("jobID", false, "Invalid job ID")
		return uuid.Nil, v.Errors()
	}
	return jobID, nil
}
