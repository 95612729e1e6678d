package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kindling/internal/config"
	"kindling/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds a full app against an in-memory sqlite store with no
// Redis, the same wiring production uses minus the network.
func setupTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	s := NewServerWithDeps(&config.Config{}, db, nil)
	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, db
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "text", UserID: userID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, postID, userID uint, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Content: content, PostID: postID, UserID: userID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
