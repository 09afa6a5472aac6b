package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/mocks"
	"github.com/consultrack/jobtrack-backend/internal/core/services"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	validParams := domain.UserRegistrationParams{
		FullName: "Jordan Rivera",
		Email:    "jordan@example.com",
		Password: "Str0ngPass!",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, validParams.Email).Return(nil, apperrors.ErrUserNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, validParams)

		require.NoError(t, err)
		assert.Equal(t, "Jordan Rivera", user.FullName)
		assert.Equal(t, domain.RoleConsultant, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, validParams.Password, user.HashedPassword)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, validParams.Email).
			Return(&domain.User{Email: validParams.Email}, nil)

		user, err := svc.Register(ctx, validParams)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("weak password", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		params := validParams
		params.Password = "short"

		user, err := svc.Register(ctx, params)

		assert.Nil(t, user)
		var verrs *apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Errors, "password")
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("invalid email", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		params := validParams
		params.Email = "not-an-email"

		user, err := svc.Register(ctx, params)

		assert.Nil(t, user)
		var verrs *apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.Errors, "email")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := domain.HashPassword("Str0ngPass!")
	require.NoError(t, err)

	activeUser := &domain.User{
		Email:          "jordan@example.com",
		HashedPassword: hashed,
		IsActive:       true,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, activeUser.Email).Return(activeUser, nil)

		user, err := svc.Login(ctx, activeUser.Email, "Str0ngPass!")

		require.NoError(t, err)
		assert.Equal(t, activeUser.Email, user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, activeUser.Email).Return(activeUser, nil)

		user, err := svc.Login(ctx, activeUser.Email, "WrongPass1")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

		user, err := svc.Login(ctx, "ghost@example.com", "Str0ngPass!")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		inactive := *activeUser
		inactive.IsActive = false
		mockRepo.On("GetByEmail", ctx, inactive.Email).Return(&inactive, nil)

		user, err := svc.Login(ctx, inactive.Email, "Str0ngPass!")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("missing inputs", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository()
		svc := services.NewAuthService(mockRepo)

		_, err := svc.Login(ctx, "", "Str0ngPass!")
		assert.ErrorIs(t, err, apperrors.ErrEmailRequired)

		_, err = svc.Login(ctx, activeUser.Email, "")
		assert.ErrorIs(t, err, apperrors.ErrPasswordRequired)
	})
}
