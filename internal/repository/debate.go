package repository

import (
	"context"
	"errors"

	"mindscape/internal/models"

	"gorm.io/gorm"
)

// DebateRepository defines the interface for debate data operations.
type DebateRepository interface {
	Create(ctx context.Context, debate *models.Debate) error
	GetByID(ctx context.Context, id uint) (*models.Debate, error)
	ListActive(ctx context.Context, limit, offset int) ([]*models.Debate, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.Debate, error)
	Update(ctx context.Context, debate *models.Debate) error
	SoftDelete(ctx context.Context, id uint) error
}

// debateRepository implements DebateRepository
type debateRepository struct {
	db *gorm.DB
}

// NewDebateRepository creates a new debate repository
func NewDebateRepository(db *gorm.DB) DebateRepository {
	return &debateRepository{db: db}
}

func (r *debateRepository) Create(ctx context.Context, debate *models.Debate) error {
	if err := r.db.WithContext(ctx).Create(debate).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *debateRepository) GetByID(ctx context.Context, id uint) (*models.Debate, error) {
	var debate models.Debate
	err := r.db.WithContext(ctx).First(&debate, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Debate", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &debate, nil
}

// ListActive returns non-deleted debates, most recent week first.
func (r *debateRepository) ListActive(ctx context.Context, limit, offset int) ([]*models.Debate, error) {
	var debates []*models.Debate
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("week_start DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&debates).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return debates, nil
}

// ListAll includes soft-deleted debates. Used by moderation views only.
func (r *debateRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.Debate, error) {
	var debates []*models.Debate
	err := r.db.WithContext(ctx).
		Order("week_start DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&debates).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return debates, nil
}

func (r *debateRepository) Update(ctx context.Context, debate *models.Debate) error {
	err := r.db.WithContext(ctx).
		Model(&models.Debate{}).
		Where("id = ?", debate.ID).
		Updates(map[string]interface{}{
			"title":        debate.Title,
			"description":  debate.Description,
			"week_start":   debate.WeekStart,
			"post_id":      debate.PostID,
			"activity_ref": debate.ActivityRef,
			"active":       debate.Active,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *debateRepository) SoftDelete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Debate{}).
		Where("id = ?", id).
		Update("deleted", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
