package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

// MockUserRepository is a mock implementation of ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockJobRepository is a mock implementation of ports.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{}
}

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployerRepository is a mock implementation of ports.EmployerRepository
type MockEmployerRepository struct {
	mock.Mock
}

func NewMockEmployerRepository() *MockEmployerRepository {
	return &MockEmployerRepository{}
}

func (m *MockEmployerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	args := m.Called(ctx, employer)
	return args.Error(0)
}

func (m *MockEmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

func (m *MockEmployerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employer), args.Error(1)
}

func (m *MockEmployerRepository) Update(ctx context.Context, employer *domain.Employer) error {
	args := m.Called(ctx, employer)
	return args.Error(0)
}

func (m *MockEmployerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCallRepository is a mock implementation of ports.CallRepository
type MockCallRepository struct {
	mock.Mock
}

func NewMockCallRepository() *MockCallRepository {
	return &MockCallRepository{}
}

func (m *MockCallRepository) Create(ctx context.Context, call *domain.Call) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *MockCallRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Call, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Call), args.Error(1)
}

func (m *MockCallRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Call), args.Error(1)
}

func (m *MockCallRepository) Update(ctx context.Context, call *domain.Call) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *MockCallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of ports.AuthService
type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, params domain.UserRegistrationParams) (*domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockJobService is a mock implementation of ports.JobService
type MockJobService struct {
	mock.Mock
}

func NewMockJobService() *MockJobService {
	return &MockJobService{}
}

func (m *MockJobService) CreateJob(ctx context.Context, params domain.JobParams, userID uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, jobID, viewerID uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, jobID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) ListMyJobs(ctx context.Context, userID uuid.UUID) ([]*domain.Job, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, jobID uuid.UUID, params domain.JobParams, actorID uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, jobID, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, jobID, actorID uuid.UUID) error {
	args := m.Called(ctx, jobID, actorID)
	return args.Error(0)
}

// MockEmployerService is a mock implementation of ports.EmployerService
type MockEmployerService struct {
	mock.Mock
}

func NewMockEmployerService() *MockEmployerService {
	return &MockEmployerService{}
}

func (m *MockEmployerService) CreateEmployer(ctx context.Context, params domain.EmployerParams, userID uuid.UUID) (*domain.Employer, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

func (m *MockEmployerService) ListMyEmployers(ctx context.Context, userID uuid.UUID) ([]*domain.Employer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employer), args.Error(1)
}

func (m *MockEmployerService) UpdateEmployer(ctx context.Context, employerID uuid.UUID, params domain.EmployerParams, actorID uuid.UUID) (*domain.Employer, error) {
	args := m.Called(ctx, employerID, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

func (m *MockEmployerService) DeleteEmployer(ctx context.Context, employerID, actorID uuid.UUID) error {
	args := m.Called(ctx, employerID, actorID)
	return args.Error(0)
}

// MockCallService is a mock implementation of ports.CallService
type MockCallService struct {
	mock.Mock
}

func NewMockCallService() *MockCallService {
	return &MockCallService{}
}

func (m *MockCallService) CreateCall(ctx context.Context, params domain.CallParams, userID uuid.UUID) (*domain.Call, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Call), args.Error(1)
}

func (m *MockCallService) ListMyCalls(ctx context.Context, userID uuid.UUID) ([]*domain.Call, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Call), args.Error(1)
}

func (m *MockCallService) UpdateCall(ctx context.Context, callID uuid.UUID, params domain.CallParams, actorID uuid.UUID) (*domain.Call, error) {
	args := m.Called(ctx, callID, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Call), args.Error(1)
}

func (m *MockCallService) DeleteCall(ctx context.Context, callID, actorID uuid.UUID) error {
	args := m.Called(ctx, callID, actorID)
	return args.Error(0)
}

// MockReportService is a mock implementation of ports.ReportService
type MockReportService struct {
	mock.Mock
}

func NewMockReportService() *MockReportService {
	return &MockReportService{}
}

func (m *MockReportService) GenerateReport(ctx context.Context, params ports.GenerateReportParams) (*report.Result, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Result), args.Error(1)
}
