package seed

import (
	"fmt"
	"testing"

	"mindscape/internal/database"
	"mindscape/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestRunProducesConnectedDataset(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{NumUsers: 8, NumPosts: 15, NumDebates: 3, RandSeed: 42}
	require.NoError(t, Run(db, opts))

	var userCount, postCount, debateCount, friendshipCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Debate{}).Count(&debateCount).Error)
	require.NoError(t, db.Model(&models.Friendship{}).Count(&friendshipCount).Error)

	assert.EqualValues(t, 9, userCount) // 8 users plus the moderator
	assert.EqualValues(t, 15, postCount)
	assert.EqualValues(t, 3, debateCount)
	assert.NotZero(t, friendshipCount)

	var moderator models.User
	require.NoError(t, db.Where("email = ?", "moderator@example.com").First(&moderator).Error)
	assert.True(t, moderator.IsModerator)
}

func TestRunIsDeterministicUnderFixedSeed(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{NumUsers: 5, NumPosts: 6, NumDebates: 2, RandSeed: 7}
	require.NoError(t, Run(db, opts))

	var first []string
	require.NoError(t, db.Model(&models.User{}).Order("id").Pluck("username", &first).Error)

	require.NoError(t, Run(db, Options{NumUsers: 5, NumPosts: 6, NumDebates: 2, RandSeed: 7, ShouldClean: true}))

	var second []string
	require.NoError(t, db.Model(&models.User{}).Order("id").Pluck("username", &second).Error)
	assert.Equal(t, first, second)
}

func TestCleanRemovesEverything(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 4, NumPosts: 5, NumDebates: 1, RandSeed: 1}))
	require.NoError(t, Clean(db))

	for _, model := range []any{&models.User{}, &models.Post{}, &models.Comment{},
		&models.Reaction{}, &models.Friendship{}, &models.Debate{}, &models.Attachment{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}
}

func TestFriendMeshHasNoDuplicatePairs(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 10, NumPosts: 3, NumDebates: 1, RandSeed: 3}))

	var friendships []models.Friendship
	require.NoError(t, db.Find(&friendships).Error)

	seen := make(map[[2]uint]bool)
	for _, fr := range friendships {
		key := pairKey(fr.RequesterID, fr.AddresseeID)
		assert.False(t, seen[key], "duplicate pair %v", key)
		seen[key] = true
	}
}
