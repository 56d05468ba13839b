package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mindscape/internal/config"
	"mindscape/internal/database"
	"mindscape/internal/models"
	"mindscape/internal/provisioner"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	srv *Server
	app *fiber.App
	db  *gorm.DB
}

var testServerSeq atomic.Uint64

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	name := fmt.Sprintf("%s-%d", t.Name(), testServerSeq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:         "test-secret-" + name,
		Port:              "0",
		AttachmentBaseURL: "https://files.example.com",
		FeatureFlags:      "weekly_debates=on,new_feed=0%",
		Env:               "test",
	}

	srv := NewServerWithDeps(cfg, db, nil, provisioner.StaticProvisioner{Prefix: "test"})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	srv.SetupRoutes(app)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return &testServer{srv: srv, app: app, db: db}
}

// signup registers a user through the API and returns the bearer token and id.
func (ts *testServer) signup(t *testing.T, username string) (string, uint) {
	t.Helper()

	resp := ts.request(t, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token, body.User.ID
}

// signupModerator registers a user and grants the moderator flag directly.
func (ts *testServer) signupModerator(t *testing.T, username string) (string, uint) {
	t.Helper()

	token, id := ts.signup(t, username)
	require.NoError(t, ts.db.Model(&models.User{}).Where("id = ?", id).Update("is_moderator", true).Error)
	return token, id
}

func (ts *testServer) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
