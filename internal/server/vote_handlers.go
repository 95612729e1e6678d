package server

import (
	"kindling/internal/models"
	"kindling/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Votes are deliberately read-modify-write against the store: the source
// contract has no idempotency key and no atomic increment, so repeated calls
// accumulate and two concurrent votes on one entity may lose an increment.

// UpvotePost handles PUT /api/posts/:id/upvote
func (s *Server) UpvotePost(c *fiber.Ctx) error {
	return s.votePost(c, "up")
}

// DownvotePost handles PUT /api/posts/:id/downvote
func (s *Server) DownvotePost(c *fiber.Ctx) error {
	return s.votePost(c, "down")
}

func (s *Server) votePost(c *fiber.Ctx, direction string) error {
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

	if direction == "up" {
		post.Upvotes++
	} else {
		post.Downvotes++
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	observability.VotesTotal.WithLabelValues("post", direction).Inc()

	// Reload associations for the response.
	post, err = s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// UpvoteComment handles PUT /api/posts/:postId/comments/:commentId/upvote
func (s *Server) UpvoteComment(c *fiber.Ctx) error {
	return s.voteComment(c, "up")
}

// DownvoteComment handles PUT /api/posts/:postId/comments/:commentId/downvote
func (s *Server) DownvoteComment(c *fiber.Ctx) error {
	return s.voteComment(c, "down")
}

func (s *Server) voteComment(c *fiber.Ctx, direction string) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	// Scoped lookup: a comment id that exists under another post is missing.
	comment, err := s.commentRepo.GetByPostAndID(ctx, postID, commentID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment", commentID))
	}

	if direction == "up" {
		comment.Upvotes++
	} else {
		comment.Downvotes++
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	observability.VotesTotal.WithLabelValues("comment", direction).Inc()

	comment, err = s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comment)
}
