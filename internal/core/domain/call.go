package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

// Call records a recruiter or vendor phone call.
//
// Date is the ISO-8601 string supplied by the client, interpreted by the
// reporting pipeline in the caller's time zone (same convention as
// Job.DateSubmitted).
type Call struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Vendor        string
	PhoneNumber   string
	Date          string
	EmployerID    *uuid.UUID
	JobID         *uuid.UUID
	Notes         string
	MarketingTeam string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// CallParams holds the caller-supplied fields for a call record.
type CallParams struct {
	Name          string
	Vendor        string
	PhoneNumber   string
	Date          string
	EmployerID    *uuid.UUID
	JobID         *uuid.UUID
	Notes         string
	MarketingTeam string
}

// NewCall is a factory function to create a valid new call record.
func NewCall(params CallParams, userID uuid.UUID) (*Call, error) {
	if params.Name == "" {
		return nil, apperrors.ErrCallerNameRequired
	}
	if params.Date == "" {
		return nil, apperrors.ErrCallDateRequired
	}

	return &Call{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          params.Name,
		Vendor:        params.Vendor,
		PhoneNumber:   params.PhoneNumber,
		Date:          params.Date,
		EmployerID:    params.EmployerID,
		JobID:         params.JobID,
		Notes:         params.Notes,
		MarketingTeam: params.MarketingTeam,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Apply overwrites the mutable fields from params and stamps UpdatedAt.
func (c *Call) Apply(params CallParams) error {
	if params.Name == "" {
		return apperrors.ErrCallerNameRequired
	}
	if params.Date == "" {
		return apperrors.ErrCallDateRequired
	}

	c.Name = params.Name
	c.Vendor = params.Vendor
	c.PhoneNumber = params.PhoneNumber
	c.Date = params.Date
	c.EmployerID = params.EmployerID
	c.JobID = params.JobID
	c.Notes = params.Notes
	c.MarketingTeam = params.MarketingTeam
	now := time.Now().UTC()
	c.UpdatedAt = &now
	return nil
}

// IsOwnedBy reports whether the call belongs to the given user.
func (c *Call) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
