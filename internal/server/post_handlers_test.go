package server

import (
	"net/http"
	"testing"

	"kindling/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Validation(t *testing.T) {
	app, _, _ := setupTestApp(t)

	tests := []struct {
		name        string
		body        map[string]string
		expectedMsg string
	}{
		{
			name:        "missing title",
			body:        map[string]string{"content": "text", "username": "alice"},
			expectedMsg: "Title is required.",
		},
		{
			name:        "whitespace title",
			body:        map[string]string{"title": "   ", "content": "text", "username": "alice"},
			expectedMsg: "Title is required.",
		},
		{
			name:        "neither content nor url",
			body:        map[string]string{"title": "Hello", "username": "alice"},
			expectedMsg: "Write some text or provide a url.",
		},
		{
			name:        "blank content and url",
			body:        map[string]string{"title": "Hello", "content": "  ", "url": " ", "username": "alice"},
			expectedMsg: "Write some text or provide a url.",
		},
		{
			name:        "both content and url",
			body:        map[string]string{"title": "Hello", "content": "text", "url": "https://example.com", "username": "alice"},
			expectedMsg: "Use either text or url, not both.",
		},
		{
			name:        "missing username",
			body:        map[string]string{"title": "Hello", "content": "text"},
			expectedMsg: "Username is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.expectedMsg, body.Error)
		})
	}
}

func TestCreatePost_Success(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]string{
		"title":    "  First light  ",
		"content":  "  hello board  ",
		"username": "  alice  ",
	}))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/posts/1", resp.Header.Get("Location"))

	post := decodeBody[models.Post](t, resp)
	assert.Equal(t, "First light", post.Title, "title stored trimmed")
	assert.Equal(t, "hello board", post.Content, "content stored trimmed")
	assert.Empty(t, post.URL)
	assert.Equal(t, 0, post.Upvotes)
	assert.Equal(t, 0, post.Downvotes)
	assert.Equal(t, "alice", post.User.Username, "username stored trimmed")
	assert.Empty(t, post.Comments)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePost_LinkPost(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]string{
		"title":    "A link",
		"url":      "https://example.com",
		"username": "alice",
	}))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)
	assert.Empty(t, post.Content)
	assert.Equal(t, "https://example.com", post.URL)
}

func TestCreatePost_ReusesExistingAuthor(t *testing.T) {
	app, _, db := setupTestApp(t)
	existing := seedUser(t, db, "alice")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]string{
		"title":    "Second post",
		"content":  "same author",
		"username": "alice",
	}))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decodeBody[models.Post](t, resp)
	assert.Equal(t, existing.ID, post.UserID)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)
}

func TestGetPosts_EmptyStore(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBody[[]models.Post](t, resp)
	assert.Empty(t, posts)
}

func TestGetPosts_IncludesAuthorsAndComments(t *testing.T) {
	app, _, db := setupTestApp(t)
	author := seedUser(t, db, "alice")
	commenter := seedUser(t, db, "bob")
	post := seedPost(t, db, author.ID, "With comments")
	seedComment(t, db, post.ID, commenter.ID, "hi there")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBody[[]models.Post](t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "alice", posts[0].User.Username)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "hi there", posts[0].Comments[0].Content)
	assert.Equal(t, "bob", posts[0].Comments[0].User.Username)
}

func TestGetPost_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/99", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPost_NonNumericID(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/abc", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Route params that cannot address a resource are treated as missing.
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
