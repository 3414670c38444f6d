package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
)

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	u := models.User{
		Name: "Someone", Email: role + "@example.com",
		Password: "irrelevant", Role: role, Status: models.UserActive,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestSuspendAdminRejected(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, models.RoleAdmin)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Suspend(admin.ID)
	assert.ErrorIs(t, err, ErrAdminImmutable)
}

func TestDeleteAdminRejected(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, models.RoleAdmin)
	svc := NewUserService(repositories.NewUserRepository(db))

	err := svc.Delete(admin.ID)
	assert.ErrorIs(t, err, ErrAdminImmutable)

	// Still present.
	var count int64
	db.Model(&models.User{}).Where("id = ?", admin.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSuspendAndActivateRegularUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleUser)
	svc := NewUserService(repositories.NewUserRepository(db))

	suspended, err := svc.Suspend(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserSuspended, suspended.Status)

	activated, err := svc.Activate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserActive, activated.Status)
}

func TestDeleteRegularUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleUser)
	svc := NewUserService(repositories.NewUserRepository(db))

	require.NoError(t, svc.Delete(user.ID))

	_, err := svc.Find(user.ID)
	assert.Error(t, err)
}
