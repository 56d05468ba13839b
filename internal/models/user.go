// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the Mindscape feed.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	// IsModerator grants edit/delete over other users' posts and debate
	// management. Capability evaluation happens at the handler boundary;
	// core operations receive the pre-evaluated flag.
	IsModerator bool      `gorm:"default:false" json:"is_moderator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
