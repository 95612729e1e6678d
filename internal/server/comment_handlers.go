package server

import (
	"fmt"

	"kindling/internal/models"
	"kindling/internal/observability"
	"kindling/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
		UserID  int    `json:"userId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(ctx, service.CreateCommentInput{
		PostID:  postID,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return respondWithAppError(c, err)
	}

	observability.CommentsCreated.Inc()

	c.Location(fmt.Sprintf("/api/posts/%d/comments/%d", postID, comment.ID))
	return c.Status(fiber.StatusCreated).JSON(comment)
}
