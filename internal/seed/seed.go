// Package seed provides the startup baseline seed and development data seeding.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"kindling/internal/middleware"
	"kindling/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// EnsureBaseline seeds one user, one post by that user and one comment on
// that post, in that order, iff the store holds no posts at all. Each entity
// is persisted before the next is created so the comment can reference the
// post's assigned id. Any error must be treated as fatal by the caller; the
// process must not serve traffic over a partially seeded store.
func EnsureBaseline(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return fmt.Errorf("baseline seed: counting posts: %w", err)
	}
	if count > 0 {
		middleware.Logger.Info("Baseline data already present, skipping seed")
		return nil
	}

	user := &models.User{Username: "kindling"}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("baseline seed: creating user: %w", err)
	}

	post := &models.Post{
		Title:   "Welcome to Kindling",
		Content: "Introduce yourself and start a discussion.",
		UserID:  user.ID,
	}
	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("baseline seed: creating post: %w", err)
	}

	comment := &models.Comment{
		Content: "Glad to be here!",
		PostID:  post.ID,
		UserID:  user.ID,
	}
	if err := db.Create(comment).Error; err != nil {
		return fmt.Errorf("baseline seed: creating comment: %w", err)
	}

	middleware.Logger.Info("Baseline seed created",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.Uint64("post_id", uint64(post.ID)),
	)
	return nil
}

// Options configuration for the development seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with generated development data. Not used at
// server startup; invoked from the seed command only.
func Seed(db *gorm.DB, opts Options) error {
	middleware.Logger.Info("Seeding development data",
		slog.Int("users", opts.NumUsers),
		slog.Int("posts", opts.NumPosts),
	)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	middleware.Logger.Info("Development seed completed",
		slog.Int("users", len(users)),
		slog.Int("posts", len(posts)),
	)
	return nil
}

func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{Username: gofakeit.Username()}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author posts")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{
			Title:     gofakeit.Sentence(5),
			UserID:    users[rand.Intn(len(users))].ID,
			Upvotes:   rand.Intn(200),
			Downvotes: rand.Intn(40),
			CreatedAt: gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
		}
		// A post carries free text or a link, never both.
		if rand.Intn(2) == 0 {
			post.Content = gofakeit.Paragraph(1, 3, 12, " ")
		} else {
			post.URL = gofakeit.URL()
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			comment := &models.Comment{
				Content:   gofakeit.Sentence(10),
				PostID:    post.ID,
				UserID:    users[rand.Intn(len(users))].ID,
				Upvotes:   rand.Intn(50),
				Downvotes: rand.Intn(10),
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
