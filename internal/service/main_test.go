package service

import (
	"context"
	"fmt"
	"testing"

	"mindscape/internal/database"
	"mindscape/internal/models"
	"mindscape/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture wires real repositories over an in-memory database so service
// behavior is tested against actual constraint enforcement.
type fixture struct {
	db          *gorm.DB
	users       repository.UserRepository
	posts       repository.PostRepository
	comments    repository.CommentRepository
	reactions   repository.ReactionRepository
	friends     repository.FriendRepository
	debates     repository.DebateRepository
	attachments repository.AttachmentRepository
}

func newFixture(t *testing.T) *fixture {
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

	return &fixture{
		db:          db,
		users:       repository.NewUserRepository(db),
		posts:       repository.NewPostRepository(db),
		comments:    repository.NewCommentRepository(db),
		reactions:   repository.NewReactionRepository(db),
		friends:     repository.NewFriendRepository(db),
		debates:     repository.NewDebateRepository(db),
		attachments: repository.NewAttachmentRepository(db),
	}
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hashed-password",
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) moderator(t *testing.T, name string) *models.User {
	t.Helper()
	user := f.user(t, name)
	require.NoError(t, f.db.Model(user).Update("is_moderator", true).Error)
	user.IsModerator = true
	return user
}

func (f *fixture) post(t *testing.T, authorID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Content: content}
	require.NoError(t, f.db.Create(post).Error)
	return post
}

func testCtx() context.Context {
	return context.Background()
}
