package repository

import (
	"context"
	"fmt"
	"testing"

	"mindscape/internal/database"
	"mindscape/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps every pooled connection on the same
	// schema while isolating tests from each other.
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

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestPost inserts a post for the given author and returns it.
func createTestPost(t *testing.T, db *gorm.DB, authorID uint, content string) *models.Post {
	t.Helper()

	post := &models.Post{AuthorID: authorID, Content: content}
	require.NoError(t, db.Create(post).Error)
	return post
}

func testContext() context.Context {
	return context.Background()
}
