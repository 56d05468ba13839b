// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Debate represents a moderator-curated weekly debate entry.
//
// A debate may reference a feed post and an external discussion activity,
// but its lifecycle is independent of both. ActivityRef is an opaque id
// returned by the external provisioner; the core only stores and forwards it.
type Debate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	WeekStart   time.Time `gorm:"not null;index" json:"week_start"`
	PostID      *uint     `gorm:"index" json:"post_id,omitempty"`
	Post        *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ActivityRef string    `json:"activity_ref,omitempty"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	Deleted     bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
