package server

import (
	"net/http"
	"testing"

	"mindscape/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMyProfile(t *testing.T) {
	ts := newTestServer(t)
	token, id := ts.signup(t, "alice")

	resp := ts.request(t, http.MethodPut, "/api/users/me", token, fiber.Map{
		"display_name": "Alice Liddell",
		"avatar_url":   "https://cdn.example.com/alice.png",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.User
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Alice Liddell", updated.DisplayName)

	// The change is persisted, and follow-up reads see it.
	resp = ts.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	decodeBody(t, resp, &me)
	assert.Equal(t, id, me.ID)
	assert.Equal(t, "Alice Liddell", me.DisplayName)
	assert.Equal(t, "https://cdn.example.com/alice.png", me.AvatarURL)
}

func TestUpdateMyProfileValidation(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signup(t, "alice")

	resp := ts.request(t, http.MethodPut, "/api/users/me", token, fiber.Map{
		"avatar_url": "not-a-url",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.request(t, http.MethodPut, "/api/users/me", "", fiber.Map{
		"display_name": "Nobody",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
