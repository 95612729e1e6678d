// Package client provides a Go consumer for the Kindling HTTP API, matching
// the wire contract the board frontend uses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kindling/internal/models"

	"github.com/google/uuid"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the Kindling API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL, e.g. "http://localhost:8274".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// GetPosts returns the most recent posts, newest first.
func (c *Client) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts)
	return posts, err
}

// GetPost returns one post with its author and comments.
func (c *Client) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost submits a new post. Exactly one of content and url may be set.
func (c *Client) CreatePost(ctx context.Context, title, content, url, username string) (*models.Post, error) {
	body := map[string]string{
		"title":    title,
		"content":  content,
		"url":      url,
		"username": username,
	}
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateComment submits a comment on a post for an existing user.
func (c *Client) CreateComment(ctx context.Context, postID uint, content string, userID uint) (*models.Comment, error) {
	body := map[string]any{
		"content": content,
		"userId":  userID,
	}
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpvotePost increments the post's upvote counter and returns the updated post.
func (c *Client) UpvotePost(ctx context.Context, id uint) (*models.Post, error) {
	return c.votePost(ctx, id, "upvote")
}

// DownvotePost increments the post's downvote counter and returns the updated post.
func (c *Client) DownvotePost(ctx context.Context, id uint) (*models.Post, error) {
	return c.votePost(ctx, id, "downvote")
}

func (c *Client) votePost(ctx context.Context, id uint, direction string) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/api/posts/%d/%s", id, direction)
	if err := c.do(ctx, http.MethodPut, path, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpvoteComment increments a comment's upvote counter and returns the updated comment.
func (c *Client) UpvoteComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return c.voteComment(ctx, postID, commentID, "upvote")
}

// DownvoteComment increments a comment's downvote counter and returns the updated comment.
func (c *Client) DownvoteComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return c.voteComment(ctx, postID, commentID, "downvote")
}

func (c *Client) voteComment(ctx context.Context, postID, commentID uint, direction string) (*models.Comment, error) {
	var comment models.Comment
	path := fmt.Sprintf("/api/posts/%d/comments/%d/%s", postID, commentID, direction)
	if err := c.do(ctx, http.MethodPut, path, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorMessage extracts the error field from a JSON error body, falling back
// to the raw body text.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return string(raw)
}
