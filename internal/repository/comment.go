// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"kindling/internal/cache"
	"kindling/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// GetByPostAndID looks up a comment scoped to its parent post. A comment
	// that exists under a different post is reported as not found.
	GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if err == nil {
		cache.InvalidatePost(ctx, comment.PostID)
	}
	return err
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update persists the comment's own columns and invalidates the parent
// post's cache entry, which embeds the comment.
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}
