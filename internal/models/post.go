// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a feed post.
//
// Posts are soft-deleted: Deleted is an explicit flag rather than a
// gorm.DeletedAt scope so that moderation views and direct lookups can still
// see hidden records. Deleting a post cascades the flag to its comments.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Deleted  bool   `gorm:"not null;default:false;index" json:"deleted"`
	// LikeCount is not persisted; computed at query time
	LikeCount int `gorm:"->" json:"like_count"`
	// DislikeCount is not persisted; computed at query time
	DislikeCount int `gorm:"->" json:"dislike_count"`
	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->" json:"comment_count"`
	// Liked and Disliked indicate the requesting user's reaction state (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	Disliked  bool      `gorm:"->" json:"disliked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
