// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ReactionKind identifies the kind of reaction a user left on a post.
type ReactionKind string

const (
	// ReactionLike marks a post as liked.
	ReactionLike ReactionKind = "like"
	// ReactionDislike marks a post as disliked.
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether the kind is one of the known reaction kinds.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction represents a user's like or dislike on a post.
//
// The row's existence is the state: counts are derived by counting rows,
// never stored. The combination of PostID, UserID and Kind must be unique;
// duplicate inserts are absorbed at the constraint. Likes and dislikes are
// independent sets, so a user may hold both at once.
type Reaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	PostID    uint         `gorm:"not null;uniqueIndex:idx_reaction_identity" json:"post_id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_reaction_identity" json:"user_id"`
	Kind      ReactionKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_reaction_identity" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Reaction) TableName() string {
	return "reactions"
}
