// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// FriendshipStatus represents the status of a friendship request.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a pending friendship request.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an accepted friendship.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// Friendship represents the relationship between two users.
//
// The relationship is undirected in meaning but stored directionally:
// while pending, RequesterID sent the request and AddresseeID received it.
// Accepting flips Status in place; cancel and remove hard-delete the row.
// At most one row exists per unordered user pair.
type Friendship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// FriendshipView is the viewer-relative projection of a relationship.
type FriendshipView struct {
	IsFriend            bool `json:"is_friend"`
	RequestSentByViewer bool `json:"request_sent_by_viewer"`
	IncomingFromSubject bool `json:"incoming_from_subject"`
	RelationshipID      uint `json:"relationship_id,omitempty"`
}
