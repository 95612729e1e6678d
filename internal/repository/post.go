// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"kindling/internal/cache"
	"kindling/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Count(ctx context.Context) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.Invalidate(ctx, cache.PostListKey())
	}
	return err
}

// GetByID loads the post with its author and its comments, each comment with
// its own author. Served cache-aside; every mutation invalidates the key.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.withIncludes(r.db.WithContext(ctx)).First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns the most recent posts ordered by creation time descending,
// with the same eager loading as GetByID.
func (r *postRepository) List(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostListKey(), &posts, cache.ListTTL, func() error {
		return r.withIncludes(r.db.WithContext(ctx)).
			Order("created_at DESC").
			Limit(limit).
			Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update persists the post's own columns. Associations are loaded for
// serialization only and are never written back here.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

// withIncludes adds the eager-load projection: author plus comments with
// their authors, comments ordered by creation time.
func (r *postRepository) withIncludes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User")
}
