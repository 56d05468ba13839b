package service

import (
	"context"
	"strings"

	"mindscape/internal/models"
	"mindscape/internal/notifications"
	"mindscape/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	PostID   uint
	AuthorID uint
	Content  string
}

type DeleteCommentInput struct {
	CommentID   uint
	ActorID     uint
	IsModerator bool
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment adds a comment to a post. The parent post must exist and
// not be soft-deleted; a hidden parent reads as absent.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, *notifications.CommentCreated, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, nil, err
	}
	if post.Deleted {
		return nil, nil, models.NewNotFoundError("Post", in.PostID)
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, nil, err
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, nil, err
	}
	fact := notifications.NewCommentCreated(in.PostID, comment.ID, in.AuthorID)
	return created, &fact, nil
}

// GetComment returns the comment even when soft-deleted.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListComments returns a post's visible comments in thread order, oldest
// first. A post with no comments yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListActiveByPost(ctx, postID)
}

// DeleteComment soft-deletes a single comment. Repeating the call after it
// already succeeded is a no-op.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != in.ActorID && !in.IsModerator {
		return models.NewPermissionError("You can only delete your own comments")
	}
	if comment.Deleted {
		return nil
	}
	return s.commentRepo.SoftDelete(ctx, in.CommentID)
}
