package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
)

// UserRepository defines the port for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// JobRepository defines the port for job submission persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployerRepository defines the port for employer persistence.
type EmployerRepository interface {
	Create(ctx context.Context, employer *domain.Employer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error)
	Update(ctx context.Context, employer *domain.Employer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CallRepository defines the port for call record persistence.
type CallRepository interface {
	Create(ctx context.Context, call *domain.Call) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Call, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error)
	Update(ctx context.Context, call *domain.Call) error
	Delete(ctx context.Context, id uuid.UUID) error
}
