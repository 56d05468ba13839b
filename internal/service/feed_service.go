package service

import (
	"context"
	"log/slog"
	"time"

	"mindscape/internal/models"
	"mindscape/internal/repository"
)

// AttachmentStore lists the files attached to a post. Storage mechanics live
// behind this interface; the feed only needs the post id as a join key.
type AttachmentStore interface {
	ListByPost(ctx context.Context, postID uint) ([]models.AttachmentView, error)
}

// CommentView is a comment annotated with viewer-relative ownership.
type CommentView struct {
	ID              uint      `json:"id"`
	PostID          uint      `json:"post_id"`
	AuthorID        uint      `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	IsOwnedByViewer bool      `json:"is_owned_by_viewer"`
}

// PostView is the fully assembled feed entry: the post with its computed
// counts and viewer reaction flags, plus author display info, attachments,
// and the chronological comment thread.
type PostView struct {
	ID              uint                    `json:"id"`
	AuthorID        uint                    `json:"author_id"`
	AuthorName      string                  `json:"author_name"`
	Content         string                  `json:"content"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	LikeCount       int                     `json:"like_count"`
	DislikeCount    int                     `json:"dislike_count"`
	CommentCount    int                     `json:"comment_count"`
	Liked           bool                    `json:"liked"`
	Disliked        bool                    `json:"disliked"`
	IsOwnedByViewer bool                    `json:"is_owned_by_viewer"`
	Attachments     []models.AttachmentView `json:"attachments"`
	Comments        []CommentView           `json:"comments"`
}

// ProfileFeed is one author's feed plus the viewer's relationship to them.
type ProfileFeed struct {
	Posts      []*PostView            `json:"posts"`
	Friendship *models.FriendshipView `json:"friendship"`
}

// FeedService composes the read side of the feed. It performs no mutation;
// an empty feed is an empty result, never an error.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	attachments AttachmentStore
	friends     *FriendService
}

func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	attachments AttachmentStore,
	friends *FriendService,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		attachments: attachments,
		friends:     friends,
	}
}

// AssembleFeed returns the newest visible posts, fully composed for the
// given viewer. A viewer id of zero means an anonymous read: ownership and
// reaction flags come back false.
func (s *FeedService) AssembleFeed(ctx context.Context, viewerID uint, limit, offset int) ([]*PostView, error) {
	posts, err := s.postRepo.ListActive(ctx, normalizeLimit(limit), offset, viewerID)
	if err != nil {
		return nil, err
	}
	return s.composeViews(ctx, posts, viewerID)
}

// AssembleProfileFeed is AssembleFeed filtered to one author, plus the
// friendship state between viewer and subject.
func (s *FeedService) AssembleProfileFeed(ctx context.Context, subjectID, viewerID uint, limit, offset int) (*ProfileFeed, error) {
	posts, err := s.postRepo.ListActiveByAuthor(ctx, subjectID, normalizeLimit(limit), offset, viewerID)
	if err != nil {
		return nil, err
	}
	views, err := s.composeViews(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}

	friendship, err := s.friends.GetStatus(ctx, viewerID, subjectID)
	if err != nil {
		return nil, err
	}
	return &ProfileFeed{Posts: views, Friendship: friendship}, nil
}

func (s *FeedService) composeViews(ctx context.Context, posts []*models.Post, viewerID uint) ([]*PostView, error) {
	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		view := &PostView{
			ID:              post.ID,
			AuthorID:        post.AuthorID,
			AuthorName:      post.Author.Username,
			Content:         post.Content,
			CreatedAt:       post.CreatedAt,
			UpdatedAt:       post.UpdatedAt,
			LikeCount:       post.LikeCount,
			DislikeCount:    post.DislikeCount,
			CommentCount:    post.CommentCount,
			Liked:           post.Liked,
			Disliked:        post.Disliked,
			IsOwnedByViewer: viewerID != 0 && post.AuthorID == viewerID,
			Attachments:     []models.AttachmentView{},
			Comments:        []CommentView{},
		}

		if s.attachments != nil {
			attachments, err := s.attachments.ListByPost(ctx, post.ID)
			if err != nil {
				// A broken attachment backend degrades the entry, it
				// does not take down the whole feed.
				slog.WarnContext(ctx, "attachment listing failed",
					slog.Uint64("post_id", uint64(post.ID)),
					slog.Any("error", err))
			} else {
				view.Attachments = attachments
			}
		}

		comments, err := s.commentRepo.ListActiveByPost(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		for _, comment := range comments {
			view.Comments = append(view.Comments, CommentView{
				ID:              comment.ID,
				PostID:          comment.PostID,
				AuthorID:        comment.AuthorID,
				AuthorName:      comment.Author.Username,
				Content:         comment.Content,
				CreatedAt:       comment.CreatedAt,
				IsOwnedByViewer: viewerID != 0 && comment.AuthorID == viewerID,
			})
		}

		views = append(views, view)
	}
	return views, nil
}
