// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a top-level submission: a title plus either free text or a
// link, never both. Vote counters are independent and only ever incremented.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	URL       string    `json:"url"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int       `gorm:"not null;default:0" json:"downvotes"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
}
