// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fmt"
	"strings"

	"kindling/internal/models"
	"kindling/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// recentPostsLimit is the fixed listing cutoff; there is no pagination.
const recentPostsLimit = 50

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		URL      string `json:"url"`
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validation order is part of the contract: each rule has its own message
	// and the first failure wins.
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required."))
	}

	content := strings.TrimSpace(req.Content)
	url := strings.TrimSpace(req.URL)
	hasContent := content != ""
	hasURL := url != ""

	if !hasContent && !hasURL {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Write some text or provide a url."))
	}
	if hasContent && hasURL {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Use either text or url, not both."))
	}

	if strings.TrimSpace(req.Username) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required."))
	}

	user, err := s.userService.FindOrCreate(ctx, req.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		URL:     url,
		UserID:  user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Reload so the response carries the author and the (empty) comment list.
	post, err = s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	observability.PostsCreated.Inc()

	c.Location(fmt.Sprintf("/api/posts/%d", post.ID))
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postRepo.List(ctx, recentPostsLimit)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}

	return c.JSON(post)
}
