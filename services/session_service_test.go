package services

import (
	"testing"
	"time"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Session{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "hashed-password",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestSessionCreateAndValidate(t *testing.T) {
	db := setupTestDB(t)
	service := NewSessionService(repositories.NewSessionRepository(db))
	user := createTestUser(t, db, "a@example.edu", models.RoleStudent)

	token, err := service.Create(user.ID)
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 random bytes, hex-encoded

	userID, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSessionTokensAreUnique(t *testing.T) {
	db := setupTestDB(t)
	service := NewSessionService(repositories.NewSessionRepository(db))
	user := createTestUser(t, db, "a@example.edu", models.RoleStudent)

	first, err := service.Create(user.ID)
	require.NoError(t, err)
	second, err := service.Create(user.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionValidateUnknownToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewSessionService(repositories.NewSessionRepository(db))

	_, err := service.Validate("deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrNoSession)

	_, err = service.Validate("")
	assert.ErrorIs(t, err, apperrors.ErrNoSession)
}

func TestSessionValidateExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	repository := repositories.NewSessionRepository(db)
	service := NewSessionService(repository)
	user := createTestUser(t, db, "a@example.edu", models.RoleStudent)

	expired := models.Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repository.Create(&expired))

	_, err := service.Validate("expired-token")
	assert.ErrorIs(t, err, apperrors.ErrNoSession)

	// The expired row is gone, not just rejected.
	_, err = repository.FindByToken("expired-token")
	assert.ErrorIs(t, err, apperrors.ErrNoSession)
}

func TestSessionValidateDoesNotExtendExpiry(t *testing.T) {
	db := setupTestDB(t)
	repository := repositories.NewSessionRepository(db)
	service := NewSessionService(repository)
	user := createTestUser(t, db, "a@example.edu", models.RoleStudent)

	token, err := service.Create(user.ID)
	require.NoError(t, err)

	before, err := repository.FindByToken(token)
	require.NoError(t, err)

	_, err = service.Validate(token)
	require.NoError(t, err)

	after, err := repository.FindByToken(token)
	require.NoError(t, err)
	assert.True(t, before.ExpiresAt.Equal(after.ExpiresAt))
}

func TestSessionDestroyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewSessionService(repositories.NewSessionRepository(db))
	user := createTestUser(t, db, "a@example.edu", models.RoleStudent)

	token, err := service.Create(user.ID)
	require.NoError(t, err)

	require.NoError(t, service.Destroy(token))

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrNoSession)

	// Second destroy of the same token still succeeds.
	assert.NoError(t, service.Destroy(token))
	assert.NoError(t, service.Destroy(""))
}
