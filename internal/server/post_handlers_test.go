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

func (ts *testServer) createPost(t *testing.T, token, content string) models.Post {
	t.Helper()

	resp := ts.request(t, http.MethodPost, "/api/posts", token, fiber.Map{"content": content})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	require.NotZero(t, post.ID)
	return post
}

func TestCreateAndGetPost(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.signup(t, "alice")

	post := ts.createPost(t, token, "hello feed")
	assert.Equal(t, userID, post.AuthorID)

	resp := ts.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Post
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "hello feed", fetched.Content)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodPost, "/api/posts", "", fiber.Map{"content": "anon"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreatePostEmptyContent(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signup(t, "alice")

	resp := ts.request(t, http.MethodPost, "/api/posts", token, fiber.Map{"content": "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePostByNonAuthorForbidden(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.signup(t, "alice")
	bobToken, _ := ts.signup(t, "bob")

	post := ts.createPost(t, aliceToken, "original")

	resp := ts.request(t, http.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID),
		bobToken, fiber.Map{"content": "hijacked"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestModeratorCanEditOthersPost(t *testing.T) {
	ts := newTestServer(t)
	aliceToken, _ := ts.signup(t, "alice")
	modToken, _ := ts.signupModerator(t, "mod")

	post := ts.createPost(t, aliceToken, "original")

	resp := ts.request(t, http.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID),
		modToken, fiber.Map{"content": "edited by moderator"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Post
	decodeBody(t, resp, &updated)
	assert.Equal(t, "edited by moderator", updated.Content)
}

func TestDeletePostHidesItFromListing(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signup(t, "alice")

	post := ts.createPost(t, token, "soon gone")

	resp := ts.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Replaying the delete is a no-op, not an error.
	resp = ts.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.request(t, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []models.Post
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)
}

func TestIncludeDeletedRequiresModerator(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signup(t, "alice")
	modToken, _ := ts.signupModerator(t, "mod")

	post := ts.createPost(t, token, "hidden later")
	resp := ts.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// A regular user asking for deleted records still gets the public view.
	resp = ts.request(t, http.MethodGet, "/api/posts?include_deleted=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []models.Post
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)

	resp = ts.request(t, http.MethodGet, "/api/posts?include_deleted=true", modToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Deleted)
}

func TestGetPostNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodGet, "/api/posts/99999", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPostBadID(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.request(t, http.MethodGet, "/api/posts/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
