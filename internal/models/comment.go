// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a feed post.
// Comments are soft-deleted individually or via cascade when the parent post
// is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
}
