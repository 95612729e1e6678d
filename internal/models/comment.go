// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a reply to a post. The parent post is referenced by ID
// only; the Post object itself is never serialized so the post→comment→post
// cycle cannot occur on the wire.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int       `gorm:"not null;default:0" json:"downvotes"`
	CreatedAt time.Time `json:"createdAt"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
}
