package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

const MaxTitleLength = 255

// TeamNotSpecified is the sentinel label used when a record carries no
// marketing team. Report grouping normalizes empty labels to this value.
const TeamNotSpecified = "Not Specified"

// JobStatus tracks where a submission sits in the pipeline. The vocabulary
// is free-ordered: any status can move to any other, since recruiters skip
// and repeat stages all the time.
type JobStatus string

const (
	StatusSubmittedToVendor JobStatus = "Submitted to Vendor"
	StatusVendorCalled      JobStatus = "Vendor called"
	StatusSubmittedToClient JobStatus = "Submitted to Client"
	StatusPhoneScreening    JobStatus = "Phone Screening"
	StatusVideoScreening    JobStatus = "Video Screening"
	StatusCodeAssessment    JobStatus = "Code Assessment"
	StatusInterviewL1       JobStatus = "Interview L1"
	StatusInterviewL2       JobStatus = "Interview L2"
	StatusInterviewL3       JobStatus = "Interview L3"
	StatusFinalRound        JobStatus = "Final Round"
	StatusInPerson          JobStatus = "In-Person"
	StatusRejected          JobStatus = "Rejected"
	StatusSelected          JobStatus = "Selected"
)

// JobStatuses lists every valid status, in pipeline order.
var JobStatuses = []JobStatus{
	StatusSubmittedToVendor,
	StatusVendorCalled,
	StatusSubmittedToClient,
	StatusPhoneScreening,
	StatusVideoScreening,
	StatusCodeAssessment,
	StatusInterviewL1,
	StatusInterviewL2,
	StatusInterviewL3,
	StatusFinalRound,
	StatusInPerson,
	StatusRejected,
	StatusSelected,
}

// IsValidJobStatus reports whether s is part of the status vocabulary.
func IsValidJobStatus(s JobStatus) bool {
	for _, known := range JobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Job is a single application submission owned by one user.
//
// DateSubmitted is kept as the ISO-8601 string the client sent (date-only or
// date-time). The reporting pipeline interprets it in the caller's time zone;
// storing an instant here would bake in a zone prematurely.
type Job struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	JobLocation    string
	MyLocation     string
	Status         JobStatus
	Vendor         string
	Client         string
	EndClient      string
	EmployerID     *uuid.UUID
	DateSubmitted  string
	JobDescription string
	MarketingTeam  string
	HourlyRate     *float64
	Notes          string
	IsInterview    bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// JobParams holds the caller-supplied fields for creating a job.
type JobParams struct {
	Title          string
	JobLocation    string
	MyLocation     string
	Status         JobStatus
	Vendor         string
	Client         string
	EndClient      string
	EmployerID     *uuid.UUID
	DateSubmitted  string
	JobDescription string
	MarketingTeam  string
	HourlyRate     *float64
	Notes          string
	IsInterview    bool
}

// NewJob is a factory function to create a valid new job submission.
func NewJob(params JobParams, userID uuid.UUID) (*Job, error) {
	if params.Title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if len(params.Title) > MaxTitleLength {
		return nil, apperrors.ErrTitleTooLong
	}

	status := params.Status
	if status == "" {
		status = StatusSubmittedToVendor
	}
	if !IsValidJobStatus(status) {
		return nil, apperrors.ErrInvalidJobStatus
	}

	return &Job{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          params.Title,
		JobLocation:    params.JobLocation,
		MyLocation:     params.MyLocation,
		Status:         status,
		Vendor:         params.Vendor,
		Client:         params.Client,
		EndClient:      params.EndClient,
		EmployerID:     params.EmployerID,
		DateSubmitted:  params.DateSubmitted,
		JobDescription: params.JobDescription,
		MarketingTeam:  params.MarketingTeam,
		HourlyRate:     params.HourlyRate,
		Notes:          params.Notes,
		IsInterview:    params.IsInterview,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Apply overwrites the mutable fields from params, enforcing the same rules
// as NewJob, and stamps UpdatedAt.
func (j *Job) Apply(params JobParams) error {
	if params.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if len(params.Title) > MaxTitleLength {
		return apperrors.ErrTitleTooLong
	}
	if params.Status != "" && !IsValidJobStatus(params.Status) {
		return apperrors.ErrInvalidJobStatus
	}

	j.Title = params.Title
	j.JobLocation = params.JobLocation
	j.MyLocation = params.MyLocation
	if params.Status != "" {
		j.Status = params.Status
	}
	j.Vendor = params.Vendor
	j.Client = params.Client
	j.EndClient = params.EndClient
	j.EmployerID = params.EmployerID
	j.DateSubmitted = params.DateSubmitted
	j.JobDescription = params.JobDescription
	j.MarketingTeam = params.MarketingTeam
	j.HourlyRate = params.HourlyRate
	j.Notes = params.Notes
	j.IsInterview = params.IsInterview
	now := time.Now().UTC()
	j.UpdatedAt = &now
	return nil
}

// IsOwnedBy reports whether the job belongs to the given user.
func (j *Job) IsOwnedBy(userID uuid.UUID) bool {
	return j.UserID == userID
}
