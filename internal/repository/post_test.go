package repository

import (
	"testing"

	"mindscape/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_GetByID_IncludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "hello world")

	require.NoError(t, repo.SoftDelete(ctx, post.ID))

	got, err := repo.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, "hello world", got.Content)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(testContext(), 9999, 0)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestPostRepository_ListActive_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	kept := createTestPost(t, db, author.ID, "kept")
	removed := createTestPost(t, db, author.ID, "removed")

	require.NoError(t, repo.SoftDelete(ctx, removed.ID))

	posts, err := repo.ListActive(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, kept.ID, posts[0].ID)
}

func TestPostRepository_ListActive_CountsAndViewerState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	viewer := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "react to me")

	require.NoError(t, db.Create(&models.Reaction{PostID: post.ID, UserID: viewer.ID, Kind: models.ReactionLike}).Error)
	require.NoError(t, db.Create(&models.Reaction{PostID: post.ID, UserID: author.ID, Kind: models.ReactionDislike}).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, AuthorID: viewer.ID, Content: "nice"}).Error)

	posts, err := repo.ListActive(ctx, 10, 0, viewer.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	got := posts[0]
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 1, got.DislikeCount)
	assert.Equal(t, 1, got.CommentCount)
	assert.True(t, got.Liked)
	assert.False(t, got.Disliked)
}

func TestPostRepository_ListActive_DeletedCommentsNotCounted(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "count my comments")

	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "soon gone"}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "stays"}).Error)

	require.NoError(t, commentRepo.SoftDelete(ctx, comment.ID))

	posts, err := postRepo.ListActive(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].CommentCount)
}

func TestPostRepository_SoftDelete_CascadesToComments(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "doomed")
	other := createTestPost(t, db, author.ID, "survivor")

	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "on doomed"}).Error)
	otherComment := &models.Comment{PostID: other.ID, AuthorID: author.ID, Content: "on survivor"}
	require.NoError(t, db.Create(otherComment).Error)

	require.NoError(t, postRepo.SoftDelete(ctx, post.ID))

	comments, err := commentRepo.ListActiveByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	kept, err := commentRepo.GetByID(ctx, otherComment.ID)
	require.NoError(t, err)
	assert.False(t, kept.Deleted)
}

func TestPostRepository_SoftDelete_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "delete me twice")

	require.NoError(t, repo.SoftDelete(ctx, post.ID))
	require.NoError(t, repo.SoftDelete(ctx, post.ID))

	got, err := repo.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
}

func TestPostRepository_ListActiveByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestPost(t, db, alice.ID, "by alice")
	createTestPost(t, db, bob.ID, "by bob")

	posts, err := repo.ListActiveByAuthor(ctx, alice.ID, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, alice.ID, posts[0].AuthorID)
}

func TestPostRepository_Update_ChangesContentOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "alice")
	post := createTestPost(t, db, author.ID, "first draft")

	post.Content = "second draft"
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "second draft", got.Content)
	assert.Equal(t, author.ID, got.AuthorID)
}
