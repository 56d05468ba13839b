package repository

import (
	"context"

	"mindscape/internal/cache"
	"mindscape/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionCounts holds the per-kind totals for a single post.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ViewerReactionState reports whether a given user has each reaction kind
// on a post.
type ViewerReactionState struct {
	Liked    bool `json:"liked"`
	Disliked bool `json:"disliked"`
}

// ReactionRepository defines the interface for reaction data operations.
//
// Add relies on the unique index over (post_id, user_id, kind): a duplicate
// insert is absorbed by the database rather than rejected, so concurrent
// double-taps converge on a single row.
type ReactionRepository interface {
	Add(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error)
	Remove(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error)
	Counts(ctx context.Context, postID uint) (*ReactionCounts, error)
	ViewerState(ctx context.Context, postID, userID uint) (*ViewerReactionState, error)
}

// reactionRepository implements ReactionRepository
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Add inserts the reaction row if absent. Returns true when a row was
// created, false when the reaction already existed.
func (r *reactionRepository) Add(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error) {
	reaction := models.Reaction{PostID: postID, UserID: userID, Kind: kind}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&reaction)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	added := result.RowsAffected > 0
	if added {
		cache.InvalidatePost(ctx, postID)
		cache.InvalidateFeed(ctx)
	}
	return added, nil
}

// Remove deletes the reaction row if present. Returns true when a row was
// removed, false when there was nothing to remove.
func (r *reactionRepository) Remove(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, kind).
		Delete(&models.Reaction{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	removed := result.RowsAffected > 0
	if removed {
		cache.InvalidatePost(ctx, postID)
		cache.InvalidateFeed(ctx)
	}
	return removed, nil
}

func (r *reactionRepository) Counts(ctx context.Context, postID uint) (*ReactionCounts, error) {
	var counts ReactionCounts
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, models.ReactionLike).
		Count(&counts.Likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	err = r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, models.ReactionDislike).
		Count(&counts.Dislikes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &counts, nil
}

func (r *reactionRepository) ViewerState(ctx context.Context, postID, userID uint) (*ViewerReactionState, error) {
	var kinds []models.ReactionKind
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Pluck("kind", &kinds).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	state := &ViewerReactionState{}
	for _, k := range kinds {
		switch k {
		case models.ReactionLike:
			state.Liked = true
		case models.ReactionDislike:
			state.Disliked = true
		}
	}
	return state, nil
}
