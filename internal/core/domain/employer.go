package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

// Employer is a staffing company or client a user works with.
type Employer struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	ContactEmail string
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// EmployerParams holds the caller-supplied fields for an employer.
type EmployerParams struct {
	Name         string
	ContactEmail string
	Phone        string
	Address      string
}

// NewEmployer is a factory function to create a valid new employer.
func NewEmployer(params EmployerParams, userID uuid.UUID) (*Employer, error) {
	if params.Name == "" {
		return nil, apperrors.ErrEmployerNameRequired
	}

	return &Employer{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         params.Name,
		ContactEmail: params.ContactEmail,
		Phone:        params.Phone,
		Address:      params.Address,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Apply overwrites the mutable fields from params and stamps UpdatedAt.
func (e *Employer) Apply(params EmployerParams) error {
	if params.Name == "" {
		return apperrors.ErrEmployerNameRequired
	}

	e.Name = params.Name
	e.ContactEmail = params.ContactEmail
	e.Phone = params.Phone
	e.Address = params.Address
	now := time.Now().UTC()
	e.UpdatedAt = &now
	return nil
}

// IsOwnedBy reports whether the employer belongs to the given user.
func (e *Employer) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}
