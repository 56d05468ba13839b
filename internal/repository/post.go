// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"mindscape/internal/cache"
	"mindscape/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// List queries filter soft-deleted rows unless the method says otherwise;
// GetByID intentionally returns soft-deleted posts so moderation views and
// audits can still see them.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	ListActive(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Post, error)
	ListActiveByAuthor(ctx context.Context, authorID uint, limit, offset int, viewerID uint) ([]*models.Post, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	SoftDelete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	fetch := func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), viewerID).
			Preload("Author").
			First(&post, id).Error
	}

	var err error
	if viewerID == 0 {
		// Anonymous reads share one representation, so they are served
		// cache-aside. Authenticated reads carry per-viewer reaction state
		// and always hit the database.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// cachedFeedPage wraps the cached anonymous first page of the feed. The
// requested limit is stored alongside so a hit is only served to requests
// asking for the same page size.
type cachedFeedPage struct {
	Limit int            `json:"limit"`
	Posts []*models.Post `json:"posts"`
}

func (r *postRepository) ListActive(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Post, error) {
	cacheable := viewerID == 0 && offset == 0
	if cacheable {
		var page cachedFeedPage
		if found, err := cache.GetJSON(ctx, cache.FeedKey, &page); err == nil && found && page.Limit == limit {
			return page.Posts, nil
		}
	}

	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Where("posts.deleted = ?", false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if cacheable {
		_ = cache.SetJSON(ctx, cache.FeedKey, cachedFeedPage{Limit: limit, Posts: posts}, cache.FeedTTL)
	}
	return posts, nil
}

func (r *postRepository) ListActiveByAuthor(ctx context.Context, authorID uint, limit, offset int, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Where("posts.deleted = ? AND posts.author_id = ?", false, authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListAll returns posts regardless of the deleted flag, newest first.
// Used by moderation views only.
func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and viewer reaction state in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted = false) as comment_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.kind = 'like') as like_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.kind = 'dislike') as dislike_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ? AND reactions.kind = 'like') as liked"+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ? AND reactions.kind = 'dislike') as disliked",
			viewerID, viewerID)
	}

	return db.Select(selectQuery + ", false as liked, false as disliked")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{"content": post.Content}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

// SoftDelete hides the post and cascades the flag to its comments in one
// transaction, so a crash between the two writes cannot leave comments
// visible under a hidden post. No row is physically removed.
func (r *postRepository) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("id = ?", id).
			Update("deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("post_id = ?", id).
			Update("deleted", true).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}
