// Package models contains data structures for the application's domain models.
package models

// User represents an author in the Kindling application. Usernames are
// treated as a natural key by the find-or-create protocol but are not
// unique at the storage level, so a concurrent-create race can still
// produce duplicates.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;index" json:"username"`
	// Back-references only; excluded from JSON to keep the object graph acyclic.
	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}
