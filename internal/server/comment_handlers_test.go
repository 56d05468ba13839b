package server

import (
	"fmt"
	"net/http"
	"testing"

	"mindscape/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) createComment(t *testing.T, token string, postID uint, content string) models.Comment {
	t.Helper()

	resp := ts.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID),
		token, fiber.Map{"content": content})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var comment models.Comment
	decodeBody(t, resp, &comment)
	require.NotZero(t, comment.ID)
	return comment
}

func TestCreateAndListComments(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.signup(t, "alice")
	bobToken, bobID := ts.signup(t, "bob")

	post := ts.createPost(t, aliceToken, "discuss")
	comment := ts.createComment(t, bobToken, post.ID, "first!")
	assert.Equal(t, bobID, comment.AuthorID)

	resp := ts.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "first!", comments[0].Content)
}

func TestCommentOnDeletedPost(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signup(t, "alice")

	post := ts.createPost(t, token, "short lived")
	resp := ts.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID),
		token, fiber.Map{"content": "too late"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCommentByNonAuthorForbidden(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.signup(t, "alice")
	bobToken, _ := ts.signup(t, "bob")

	post := ts.createPost(t, aliceToken, "discuss")
	comment := ts.createComment(t, aliceToken, post.ID, "mine")

	resp := ts.request(t, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), bobToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestModeratorDeletesComment(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.signup(t, "alice")
	modToken, _ := ts.signupModerator(t, "mod")

	post := ts.createPost(t, aliceToken, "discuss")
	comment := ts.createComment(t, aliceToken, post.ID, "off topic")

	resp := ts.request(t, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), modToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []models.Comment
	decodeBody(t, resp, &comments)
	assert.Empty(t, comments)
}
