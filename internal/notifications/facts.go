// Package notifications publishes typed domain facts for external observers.
//
// The core never formats or delivers user-facing messages; it emits facts
// describing what happened and an external consumer turns them into
// notifications. Delivery transport beyond publication is out of scope.
package notifications

import (
	"time"

	"mindscape/internal/models"

	"github.com/google/uuid"
)

// Fact is a typed domain event emitted by the core.
type Fact interface {
	// Name identifies the fact kind on the wire.
	Name() string
}

// ReactionAdded records that a user reacted to a post. Emitted only when a
// reaction row was actually inserted, never on idempotent no-ops.
type ReactionAdded struct {
	FactID     string              `json:"fact_id"`
	PostID     uint                `json:"post_id"`
	UserID     uint                `json:"user_id"`
	Kind       models.ReactionKind `json:"kind"`
	OccurredAt time.Time           `json:"occurred_at"`
}

func (ReactionAdded) Name() string { return "reaction_added" }

// NewReactionAdded builds a ReactionAdded fact with a fresh id and timestamp.
func NewReactionAdded(postID, userID uint, kind models.ReactionKind) ReactionAdded {
	return ReactionAdded{
		FactID:     uuid.NewString(),
		PostID:     postID,
		UserID:     userID,
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
	}
}

// CommentCreated records that a comment was added to a post.
type CommentCreated struct {
	FactID     string    `json:"fact_id"`
	PostID     uint      `json:"post_id"`
	CommentID  uint      `json:"comment_id"`
	AuthorID   uint      `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (CommentCreated) Name() string { return "comment_created" }

// NewCommentCreated builds a CommentCreated fact with a fresh id and timestamp.
func NewCommentCreated(postID, commentID, authorID uint) CommentCreated {
	return CommentCreated{
		FactID:     uuid.NewString(),
		PostID:     postID,
		CommentID:  commentID,
		AuthorID:   authorID,
		OccurredAt: time.Now().UTC(),
	}
}

// PostCreated records that a new post entered the feed.
type PostCreated struct {
	FactID     string    `json:"fact_id"`
	PostID     uint      `json:"post_id"`
	AuthorID   uint      `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (PostCreated) Name() string { return "post_created" }

// NewPostCreated builds a PostCreated fact with a fresh id and timestamp.
func NewPostCreated(postID, authorID uint) PostCreated {
	return PostCreated{
		FactID:     uuid.NewString(),
		PostID:     postID,
		AuthorID:   authorID,
		OccurredAt: time.Now().UTC(),
	}
}

// FriendRequestSent records that a friend request was created.
type FriendRequestSent struct {
	FactID     string    `json:"fact_id"`
	RequestID  uint      `json:"request_id"`
	FromUserID uint      `json:"from_user_id"`
	ToUserID   uint      `json:"to_user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (FriendRequestSent) Name() string { return "friend_request_sent" }

// NewFriendRequestSent builds a FriendRequestSent fact with a fresh id and timestamp.
func NewFriendRequestSent(requestID, fromUserID, toUserID uint) FriendRequestSent {
	return FriendRequestSent{
		FactID:     uuid.NewString(),
		RequestID:  requestID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		OccurredAt: time.Now().UTC(),
	}
}
