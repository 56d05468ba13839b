// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Attachment records a file attached to a post.
//
// Storage mechanics (upload, serving, MIME detection) live outside this
// service; the row only keeps the stable (post, path, filename) identity so
// feed assembly can list attachments by post id.
type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_attachment_identity" json:"post_id"`
	Path      string    `gorm:"not null;default:'/';uniqueIndex:idx_attachment_identity" json:"path"`
	Filename  string    `gorm:"not null;uniqueIndex:idx_attachment_identity" json:"filename"`
	IsImage   bool      `gorm:"not null;default:false" json:"is_image"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentView is the display projection consumed by feed assembly.
type AttachmentView struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	IsImage  bool   `json:"is_image"`
}
