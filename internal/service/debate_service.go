package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mindscape/internal/models"
	"mindscape/internal/repository"
)

// Provisioner creates a discussion activity in an external system and
// returns an opaque reference to it. The reference is stored verbatim on
// the debate row and never interpreted.
type Provisioner interface {
	EnsureActivity(ctx context.Context, title, description string) (string, error)
}

// DebateService manages the moderator-curated weekly debate list. Every
// mutating operation requires the moderator flag; debates have a lifecycle
// independent of the posts they may reference.
type DebateService struct {
	debateRepo  repository.DebateRepository
	postRepo    repository.PostRepository
	provisioner Provisioner
}

type CreateDebateInput struct {
	ActorID     uint
	IsModerator bool
	Title       string
	Description string
	WeekStart   time.Time
	PostID      *uint
	Provision   bool
}

type UpdateDebateInput struct {
	DebateID    uint
	ActorID     uint
	IsModerator bool
	Title       string
	Description string
	WeekStart   time.Time
	PostID      *uint
	Active      *bool
}

type ListDebatesInput struct {
	Limit          int
	Offset         int
	IncludeDeleted bool
}

func NewDebateService(debateRepo repository.DebateRepository, postRepo repository.PostRepository, provisioner Provisioner) *DebateService {
	return &DebateService{debateRepo: debateRepo, postRepo: postRepo, provisioner: provisioner}
}

// CreateDebate adds a weekly debate. Title and week start are required; the
// linked post is optional but must exist and be visible when given. When
// provisioning is requested and a provisioner is configured, the external
// activity reference is stored on the row; a provisioning failure does not
// fail the create.
func (s *DebateService) CreateDebate(ctx context.Context, in CreateDebateInput) (*models.Debate, error) {
	if !in.IsModerator {
		return nil, models.NewPermissionError("Only moderators can manage debates")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.WeekStart.IsZero() {
		return nil, models.NewValidationError("Week start is required")
	}
	if in.PostID != nil {
		post, err := s.postRepo.GetByID(ctx, *in.PostID, 0)
		if err != nil {
			return nil, err
		}
		if post.Deleted {
			return nil, models.NewNotFoundError("Post", *in.PostID)
		}
	}

	debate := &models.Debate{
		Title:       in.Title,
		Description: in.Description,
		WeekStart:   in.WeekStart,
		PostID:      in.PostID,
		Active:      true,
	}

	if in.Provision && s.provisioner != nil {
		ref, err := s.provisioner.EnsureActivity(ctx, in.Title, in.Description)
		if err != nil {
			slog.WarnContext(ctx, "debate activity provisioning failed",
				slog.String("title", in.Title),
				slog.Any("error", err))
		} else {
			debate.ActivityRef = ref
		}
	}

	if err := s.debateRepo.Create(ctx, debate); err != nil {
		return nil, err
	}
	return debate, nil
}

// GetDebate returns the debate even when soft-deleted.
func (s *DebateService) GetDebate(ctx context.Context, id uint) (*models.Debate, error) {
	return s.debateRepo.GetByID(ctx, id)
}

func (s *DebateService) ListDebates(ctx context.Context, in ListDebatesInput) ([]*models.Debate, error) {
	limit := normalizeLimit(in.Limit)
	if in.IncludeDeleted {
		return s.debateRepo.ListAll(ctx, limit, in.Offset)
	}
	return s.debateRepo.ListActive(ctx, limit, in.Offset)
}

// UpdateDebate edits a debate in place. Active may be toggled to retire a
// week's debate without hiding it from moderation views.
func (s *DebateService) UpdateDebate(ctx context.Context, in UpdateDebateInput) (*models.Debate, error) {
	if !in.IsModerator {
		return nil, models.NewPermissionError("Only moderators can manage debates")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.WeekStart.IsZero() {
		return nil, models.NewValidationError("Week start is required")
	}

	debate, err := s.debateRepo.GetByID(ctx, in.DebateID)
	if err != nil {
		return nil, err
	}
	if debate.Deleted {
		return nil, models.NewNotFoundError("Debate", in.DebateID)
	}
	if in.PostID != nil {
		post, err := s.postRepo.GetByID(ctx, *in.PostID, 0)
		if err != nil {
			return nil, err
		}
		if post.Deleted {
			return nil, models.NewNotFoundError("Post", *in.PostID)
		}
	}

	debate.Title = in.Title
	debate.Description = in.Description
	debate.WeekStart = in.WeekStart
	debate.PostID = in.PostID
	if in.Active != nil {
		debate.Active = *in.Active
	}

	if err := s.debateRepo.Update(ctx, debate); err != nil {
		return nil, err
	}
	return debate, nil
}

// DeleteDebate soft-deletes a debate. Idempotent.
func (s *DebateService) DeleteDebate(ctx context.Context, debateID, actorID uint, isModerator bool) error {
	if !isModerator {
		return models.NewPermissionError("Only moderators can manage debates")
	}
	debate, err := s.debateRepo.GetByID(ctx, debateID)
	if err != nil {
		return err
	}
	if debate.Deleted {
		return nil
	}
	return s.debateRepo.SoftDelete(ctx, debateID)
}
