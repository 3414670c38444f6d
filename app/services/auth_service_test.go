package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	user, token, err := svc.Register("Asha", "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)

	loggedIn, _, err := svc.Login("asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	_, _, err := svc.Register("A", "same@example.com", "password-one")
	require.NoError(t, err)

	_, _, err = svc.Register("B", "same@example.com", "password-two")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	_, _, err := svc.Register("Asha", "asha@example.com", "correct-password")
	require.NoError(t, err)

	_, _, err = svc.Login("asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(repositories.NewUserRepository(newTestDB(t)))

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuspendedAccount(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	svc := NewAuthService(users)

	user, _, err := svc.Register("Asha", "asha@example.com", "correct-password")
	require.NoError(t, err)

	user.Status = models.UserSuspended
	require.NoError(t, users.Update(user))

	_, _, err = svc.Login("asha@example.com", "correct-password")
	assert.ErrorIs(t, err, ErrAccountSuspended)
}
