package service

import (
	"context"

	"mindscape/internal/models"
	"mindscape/internal/notifications"
	"mindscape/internal/repository"
)

// FriendService drives the friendship lifecycle for an unordered user pair:
// no relationship, pending request, accepted friendship. Invalid transitions
// are silent no-ops rather than errors, so replays and stale submissions
// settle on the current state without leaking information about requests
// that are not addressed to the caller.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{friendRepo: friendRepo, userRepo: userRepo}
}

// SendRequest creates a pending request from one user to another. Requests
// to oneself and pairs that already have a relationship in any state are
// absorbed without error; in those cases the returned fact is nil.
func (s *FriendService) SendRequest(ctx context.Context, fromUserID, toUserID uint) (*models.Friendship, *notifications.FriendRequestSent, error) {
	if fromUserID == toUserID {
		return nil, nil, nil
	}
	if _, err := s.userRepo.GetByID(ctx, toUserID); err != nil {
		return nil, nil, err
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, nil, nil
	}

	friendship := &models.Friendship{
		RequesterID: fromUserID,
		AddresseeID: toUserID,
		Status:      models.FriendshipStatusPending,
	}
	created, err := s.friendRepo.Create(ctx, friendship)
	if err != nil {
		return nil, nil, err
	}
	if !created {
		// Lost a race to a concurrent request for the same pair; the
		// constraint absorbed the insert. Settle on whatever row won.
		settled, err := s.friendRepo.GetBetweenUsers(ctx, fromUserID, toUserID)
		if err != nil {
			return nil, nil, err
		}
		return settled, nil, nil
	}

	fact := notifications.NewFriendRequestSent(friendship.ID, fromUserID, toUserID)
	return friendship, &fact, nil
}

// AcceptRequest flips a pending request to accepted in place. It only acts
// when the request exists, is still pending, and is addressed to the
// accepting user; otherwise the relationship is returned unchanged.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID, acceptingUserID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if friendship.Status != models.FriendshipStatusPending || friendship.AddresseeID != acceptingUserID {
		return friendship, nil
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, models.FriendshipStatusAccepted); err != nil {
		return nil, err
	}
	friendship.Status = models.FriendshipStatusAccepted
	return friendship, nil
}

// CancelRequest deletes a pending request sent by fromUserID to toUserID.
// Anything else, including an already-accepted friendship, is left alone.
func (s *FriendService) CancelRequest(ctx context.Context, fromUserID, toUserID uint) error {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, fromUserID, toUserID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != models.FriendshipStatusPending || friendship.RequesterID != fromUserID {
		return nil
	}
	return s.friendRepo.Delete(ctx, friendship.ID)
}

// RemoveFriendship deletes the row between two users regardless of status;
// either party may remove it. For an accepted friendship this is an unfriend,
// for a pending request it lets the addressee decline (or the requester
// withdraw). A pair with no row is a no-op.
func (s *FriendService) RemoveFriendship(ctx context.Context, userID, otherUserID uint) error {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID, otherUserID)
	if err != nil {
		return err
	}
	if friendship == nil {
		return nil
	}
	return s.friendRepo.Delete(ctx, friendship.ID)
}

// GetStatus reports the relationship between a viewer and a subject from the
// viewer's side.
func (s *FriendService) GetStatus(ctx context.Context, viewerID, subjectID uint) (*models.FriendshipView, error) {
	view := &models.FriendshipView{}
	if viewerID == subjectID || viewerID == 0 {
		return view, nil
	}

	friendship, err := s.friendRepo.GetBetweenUsers(ctx, viewerID, subjectID)
	if err != nil {
		return nil, err
	}
	if friendship == nil {
		return view, nil
	}

	view.RelationshipID = friendship.ID
	switch friendship.Status {
	case models.FriendshipStatusAccepted:
		view.IsFriend = true
	case models.FriendshipStatusPending:
		if friendship.RequesterID == viewerID {
			view.RequestSentByViewer = true
		} else {
			view.IncomingFromSubject = true
		}
	}
	return view, nil
}

// ListFriends returns the users this user holds an accepted friendship with.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]*models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// ListIncomingRequests returns pending requests addressed to this user.
func (s *FriendService) ListIncomingRequests(ctx context.Context, userID uint) ([]*models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(ctx, userID)
}
