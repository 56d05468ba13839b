package service

import (
	"context"

	"mindscape/internal/middleware"
	"mindscape/internal/models"
	"mindscape/internal/notifications"
	"mindscape/internal/repository"
)

type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

type SetReactionInput struct {
	PostID  uint
	UserID  uint
	Kind    models.ReactionKind
	Desired bool
}

func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, postRepo: postRepo}
}

// SetReaction drives the user's reaction on a post toward the desired
// presence. A call that finds the state already settled is an idempotent
// no-op. The returned fact is non-nil only when a reaction row was actually
// inserted, so repeat submissions never notify twice.
func (s *ReactionService) SetReaction(ctx context.Context, in SetReactionInput) (*repository.ViewerReactionState, *notifications.ReactionAdded, error) {
	if !in.Kind.Valid() {
		return nil, nil, models.NewValidationError("Invalid reaction kind")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, nil, err
	}
	if post.Deleted {
		return nil, nil, models.NewNotFoundError("Post", in.PostID)
	}

	var fact *notifications.ReactionAdded
	if in.Desired {
		added, err := s.reactionRepo.Add(ctx, in.PostID, in.UserID, in.Kind)
		if err != nil {
			return nil, nil, err
		}
		if added {
			middleware.ReactionsApplied.WithLabelValues(string(in.Kind), "add").Inc()
			f := notifications.NewReactionAdded(in.PostID, in.UserID, in.Kind)
			fact = &f
		}
	} else {
		removed, err := s.reactionRepo.Remove(ctx, in.PostID, in.UserID, in.Kind)
		if err != nil {
			return nil, nil, err
		}
		if removed {
			middleware.ReactionsApplied.WithLabelValues(string(in.Kind), "remove").Inc()
		}
	}

	state, err := s.reactionRepo.ViewerState(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, nil, err
	}
	return state, fact, nil
}

// GetCounts derives totals by counting rows; nothing is stored or cached at
// the engine level, so concurrent double-submission cannot skew the numbers.
func (s *ReactionService) GetCounts(ctx context.Context, postID uint) (*repository.ReactionCounts, error) {
	return s.reactionRepo.Counts(ctx, postID)
}

func (s *ReactionService) GetViewerState(ctx context.Context, postID, userID uint) (*repository.ViewerReactionState, error) {
	return s.reactionRepo.ViewerState(ctx, postID, userID)
}
