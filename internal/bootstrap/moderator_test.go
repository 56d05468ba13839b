package bootstrap

import (
	"fmt"
	"testing"

	"mindscape/internal/config"
	"mindscape/internal/database"
	"mindscape/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestEnsureDevModeratorCreatesAccount(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{Env: "development", DevModeratorPassword: "changeme1"}

	require.NoError(t, EnsureDevModerator(cfg, db))

	var mod models.User
	require.NoError(t, db.Where("email = ?", "moderator@mindscape.local").First(&mod).Error)
	assert.True(t, mod.IsModerator)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(mod.Password), []byte("changeme1")))
}

func TestEnsureDevModeratorIdempotent(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{Env: "development", DevModeratorPassword: "changeme1"}

	require.NoError(t, EnsureDevModerator(cfg, db))
	require.NoError(t, EnsureDevModerator(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureDevModeratorPromotesExistingAccount(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Username: "mindy",
		Email:    "mod@example.com",
		Password: "irrelevant",
	}).Error)

	cfg := &config.Config{
		Env:                  "development",
		DevModeratorEmail:    "mod@example.com",
		DevModeratorPassword: "changeme1",
	}
	require.NoError(t, EnsureDevModerator(cfg, db))

	var user models.User
	require.NoError(t, db.Where("email = ?", "mod@example.com").First(&user).Error)
	assert.True(t, user.IsModerator)
	assert.Equal(t, "mindy", user.Username)
}

func TestEnsureDevModeratorSkippedOutsideDevelopment(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{Env: "production", DevModeratorPassword: "changeme1"}

	require.NoError(t, EnsureDevModerator(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
