package repository

import (
	"context"
	"errors"

	"mindscape/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository defines the interface for friendship data operations.
//
// A friendship row is directional (requester -> addressee) but the pair is
// unique regardless of direction; GetBetweenUsers checks both orientations.
type FriendRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]*models.User, error)
	GetPendingRequests(ctx context.Context, userID uint) ([]*models.Friendship, error)
	UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error
	Delete(ctx context.Context, id uint) error
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Create inserts the friendship row if no row for the pair exists in this
// orientation. Returns true when a row was created.
func (r *friendRepository) Create(ctx context.Context, friendship *models.Friendship) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(friendship)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).First(&friendship, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetBetweenUsers returns the friendship between two users in either
// direction, or nil when no relationship exists.
func (r *friendRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetFriends returns the users on the other end of this user's accepted
// friendships.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]*models.User, error) {
	var friends []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN friendships ON (users.id = friendships.requester_id AND friendships.addressee_id = ?) OR (users.id = friendships.addressee_id AND friendships.requester_id = ?)",
			userID, userID).
		Where("friendships.status = ?", models.FriendshipStatusAccepted).
		Find(&friends).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}

// GetPendingRequests returns pending friendships addressed to this user.
func (r *friendRepository) GetPendingRequests(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	var requests []*models.Friendship
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error {
	err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete physically removes the friendship row. Friendships are the one
// entity without a soft-delete flag: cancelling a request or removing a
// friend returns the pair to the no-relationship state.
func (r *friendRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Friendship{}, id).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
