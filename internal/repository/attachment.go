package repository

import (
	"context"

	"mindscape/internal/models"

	"gorm.io/gorm"
)

// AttachmentRepository defines the interface for attachment data operations.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Attachment, error)
	DeleteByPost(ctx context.Context, postID uint) error
}

// attachmentRepository implements AttachmentRepository
type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	if err := r.db.WithContext(ctx).Create(attachment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *attachmentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return attachments, nil
}

func (r *attachmentRepository) DeleteByPost(ctx context.Context, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Attachment{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
