package service

import (
	"testing"

	"mindscape/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := testCtx()

	author := f.user(t, "alice")
	commenter := f.user(t, "bob")
	post := f.post(t, author.ID, "discuss")

	comment, fact, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: commenter.ID, Content: "great point"})
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "bob", comment.Author.Username)
	require.NotNil(t, fact)
	assert.Equal(t, comment.ID, fact.CommentID)
}

func TestCreateComment_DeletedParentReadsAsAbsent(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := testCtx()

	author := f.user(t, "alice")
	post := f.post(t, author.ID, "short-lived")
	require.NoError(t, f.posts.SoftDelete(ctx, post.ID))

	_, _, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: "too late"})
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestCreateComment_MissingParent(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)

	author := f.user(t, "alice")

	_, _, err := svc.CreateComment(testCtx(), CreateCommentInput{PostID: 4040, AuthorID: author.ID, Content: "into the void"})
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestCreateComment_EmptyContent(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)

	author := f.user(t, "alice")
	post := f.post(t, author.ID, "say something")

	_, _, err := svc.CreateComment(testCtx(), CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: ""})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestDeleteComment_GetByIDStillReturnsRecord(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := testCtx()

	author := f.user(t, "alice")
	post := f.post(t, author.ID, "thread")

	comment, _, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: "regrets"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, DeleteCommentInput{CommentID: comment.ID, ActorID: author.ID}))

	got, err := svc.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, "regrets", got.Content)

	listed, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteComment_StrangerRejected(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := testCtx()

	author := f.user(t, "alice")
	stranger := f.user(t, "bob")
	post := f.post(t, author.ID, "thread")

	comment, _, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: "mine"})
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, DeleteCommentInput{CommentID: comment.ID, ActorID: stranger.ID})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestListComments_ThreadOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, f.posts)
	ctx := testCtx()

	author := f.user(t, "alice")
	post := f.post(t, author.ID, "thread")

	first, _, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: "first"})
	require.NoError(t, err)
	second, _, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, AuthorID: author.ID, Content: "second"})
	require.NoError(t, err)

	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}
