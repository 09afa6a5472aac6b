package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

// seedUser inserts a user directly for tests that need an owner row.
func seedUser(t *testing.T) *domain.User {
	t.Helper()
	require.NotNil(t, testPool, "testPool is nil. TestMain may not have run.")

	user := &domain.User{
		ID:             uuid.New(),
		FullName:       "Seed User",
		Email:          fmt.Sprintf("seed-%s@example.com", uuid.NewString()),
		HashedPassword: "hashedpassword",
		Role:           domain.RoleConsultant,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	repo := NewUserRepository(testPool)
	require.NoError(t, repo.Create(context.Background(), user), "Failed to seed user")
	return user
}

func TestUserRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, testPool, "testPool is nil. TestMain may not have run.")
	repo := NewUserRepository(testPool)

	email := fmt.Sprintf("test-%s@example.com", uuid.NewString())
	user := &domain.User{
		ID:             uuid.New(),
		FullName:       "Test User",
		Email:          email,
		HashedPassword: "hashedpassword",
		Role:           domain.RoleConsultant,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	require.NoError(t, repo.Create(ctx, user), "Failed to create user")

	foundUser, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err, "Failed to get user by email")
	assert.Equal(t, user.ID, foundUser.ID)
	assert.Equal(t, "Test User", foundUser.FullName)
	assert.Equal(t, domain.RoleConsultant, foundUser.Role)
	assert.True(t, foundUser.IsActive)

	foundByID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err, "Failed to get user by ID")
	assert.Equal(t, user.Email, foundByID.Email)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	existing := seedUser(t)

	duplicate := &domain.User{
		ID:             uuid.New(),
		FullName:       "Other User",
		Email:          existing.Email,
		HashedPassword: "hashedpassword",
		Role:           domain.RoleConsultant,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	err := repo.Create(ctx, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	_, err := repo.GetByEmail(ctx, "nonexistent@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
