package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

// AuthService defines the port for authentication business logic.
type AuthService interface {
	Register(ctx context.Context, params domain.UserRegistrationParams) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// JobService defines the core business operations for job submissions.
type JobService interface {
	CreateJob(ctx context.Context, params domain.JobParams, userID uuid.UUID) (*domain.Job, error)
	GetJob(ctx context.Context, jobID, viewerID uuid.UUID) (*domain.Job, error)
	ListMyJobs(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error)
	UpdateJob(ctx context.Context, jobID uuid.UUID, params domain.JobParams, actorID uuid.UUID) (*domain.Job, error)
	DeleteJob(ctx context.Context, jobID, actorID uuid.UUID) error
}

// EmployerService defines the business operations for employers.
type EmployerService interface {
	CreateEmployer(ctx context.Context, params domain.EmployerParams, userID uuid.UUID) (*domain.Employer, error)
	ListMyEmployers(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error)
	UpdateEmployer(ctx context.Context, employerID uuid.UUID, params domain.EmployerParams, actorID uuid.UUID) (*domain.Employer, error)
	DeleteEmployer(ctx context.Context, employerID, actorID uuid.UUID) error
}

// CallService defines the business operations for call records.
type CallService interface {
	CreateCall(ctx context.Context, params domain.CallParams, userID uuid.UUID) (*domain.Call, error)
	ListMyCalls(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error)
	UpdateCall(ctx context.Context, callID uuid.UUID, params domain.CallParams, actorID uuid.UUID) (*domain.Call, error)
	DeleteCall(ctx context.Context, callID, actorID uuid.UUID) error
}

// GenerateReportParams defines the input for building an activity report.
type GenerateReportParams struct {
	UserID   uuid.UUID
	Duration string
	FromDate string
	ToDate   string
	TimeZone string
}

// ReportService defines the port for the activity reporting pipeline.
type ReportService interface {
	GenerateReport(ctx context.Context, params GenerateReportParams) (*report.Result, error)
}
