// Package service implements the application's business logic on top of the
// repository layer. Services take the acting user id and any pre-evaluated
// permission flags as explicit arguments; they never consult ambient state.
package service

import (
	"context"
	"strings"

	"mindscape/internal/models"
	"mindscape/internal/notifications"
	"mindscape/internal/repository"
)

const maxContentLen = 50000

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	AuthorID uint
	Content  string
}

type UpdatePostInput struct {
	PostID      uint
	EditorID    uint
	Content     string
	IsModerator bool
}

type DeletePostInput struct {
	PostID      uint
	ActorID     uint
	IsModerator bool
}

type ListPostsInput struct {
	Limit          int
	Offset         int
	CurrentUserID  uint
	IncludeDeleted bool
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost stores a new post. The returned fact is non-nil on success so
// the caller can hand it to the notification dispatcher.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, *notifications.PostCreated, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, nil, err
	}

	created, err := s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
	if err != nil {
		return nil, nil, err
	}
	fact := notifications.NewPostCreated(post.ID, in.AuthorID)
	return created, &fact, nil
}

// GetPost returns the post regardless of its deleted flag; callers decide
// what a hidden record means for them.
func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	limit := normalizeLimit(in.Limit)
	if in.IncludeDeleted {
		return s.postRepo.ListAll(ctx, limit, in.Offset)
	}
	return s.postRepo.ListActive(ctx, limit, in.Offset, in.CurrentUserID)
}

// UpdatePost edits a post's content. Only the author or a moderator may
// edit; a soft-deleted post cannot be edited.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.EditorID)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}
	if post.AuthorID != in.EditorID && !in.IsModerator {
		return nil, models.NewPermissionError("You can only edit your own posts")
	}

	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID, in.EditorID)
}

// DeletePost soft-deletes the post and cascades to its comments. Repeating
// the call after it already succeeded is a no-op, not an error.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.ActorID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.ActorID && !in.IsModerator {
		return models.NewPermissionError("You can only delete your own posts")
	}
	if post.Deleted {
		return nil
	}
	return s.postRepo.SoftDelete(ctx, in.PostID)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
