package seed

import (
	"testing"

	"kindling/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func TestEnsureBaseline_SeedsEmptyStore(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, EnsureBaseline(db))

	var users, posts, comments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)

	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), posts)
	assert.Equal(t, int64(1), comments)

	// The comment must reference the seeded post and user.
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	var post models.Post
	require.NoError(t, db.First(&post).Error)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, post.UserID, comment.UserID)
}

func TestEnsureBaseline_SkipsWhenPostsExist(t *testing.T) {
	db := setupSeedTestDB(t)

	user := models.User{Username: "existing"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Post{Title: "already here", Content: "text", UserID: user.ID}).Error)

	require.NoError(t, EnsureBaseline(db))

	var users, posts, comments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)

	assert.Equal(t, int64(1), users, "no baseline user added")
	assert.Equal(t, int64(1), posts, "no baseline post added")
	assert.Zero(t, comments, "no baseline comment added")
}

func TestEnsureBaseline_IsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, EnsureBaseline(db))
	require.NoError(t, EnsureBaseline(db))

	var posts int64
	db.Model(&models.Post{}).Count(&posts)
	assert.Equal(t, int64(1), posts)
}

func TestSeed_GeneratesValidPosts(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumPosts: 10}))

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 10)

	for _, p := range posts {
		assert.NotEmpty(t, p.Title)
		assert.NotZero(t, p.UserID)
		hasContent := p.Content != ""
		hasURL := p.URL != ""
		assert.True(t, hasContent != hasURL, "post %d must have content xor url", p.ID)
	}
}

func TestSeed_CleanRemovesPreviousData(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 2, NumPosts: 4}))
	require.NoError(t, Seed(db, Options{NumUsers: 1, NumPosts: 2, ShouldClean: true}))

	var users, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(2), posts)
}
