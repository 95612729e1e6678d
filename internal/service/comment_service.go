package service

import (
	"context"
	"errors"
	"strings"

	"kindling/internal/models"
	"kindling/internal/repository"

	"gorm.io/gorm"
)

// CommentService validates and persists comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// CreateCommentInput carries the raw wire values for comment creation.
// UserID stays signed so out-of-range values can be rejected explicitly.
type CreateCommentInput struct {
	PostID  uint
	Content string
	UserID  int
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create checks the comment rules in order: content first, then the parent
// post, then the author. A missing post is not-found; a missing or invalid
// author is a validation failure, mirroring the wire contract.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required.")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	if in.UserID <= 0 {
		return nil, models.NewValidationError("UserId is required.")
	}

	user, err := s.userRepo.GetByID(ctx, uint(in.UserID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("User not found.")
		}
		return nil, err
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(in.Content),
		PostID:  in.PostID,
		UserID:  user.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload so the response carries the author.
	return s.commentRepo.GetByID(ctx, comment.ID)
}
