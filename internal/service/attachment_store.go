package service

import (
	"context"
	"fmt"
	"strings"

	"mindscape/internal/models"
	"mindscape/internal/repository"
)

// repositoryAttachmentStore serves attachment listings out of the local
// attachments table. URLs point at the external file host configured by
// ATTACHMENT_BASE_URL; this service never touches file contents.
type repositoryAttachmentStore struct {
	repo    repository.AttachmentRepository
	baseURL string
}

func NewRepositoryAttachmentStore(repo repository.AttachmentRepository, baseURL string) AttachmentStore {
	return &repositoryAttachmentStore{
		repo:    repo,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *repositoryAttachmentStore) ListByPost(ctx context.Context, postID uint) ([]models.AttachmentView, error) {
	attachments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	views := make([]models.AttachmentView, 0, len(attachments))
	for _, a := range attachments {
		views = append(views, models.AttachmentView{
			URL:      s.urlFor(postID, a),
			Filename: a.Filename,
			IsImage:  a.IsImage,
		})
	}
	return views, nil
}

func (s *repositoryAttachmentStore) urlFor(postID uint, a *models.Attachment) string {
	path := strings.Trim(a.Path, "/")
	if path == "" {
		return fmt.Sprintf("%s/%d/%s", s.baseURL, postID, a.Filename)
	}
	return fmt.Sprintf("%s/%d/%s/%s", s.baseURL, postID, path, a.Filename)
}
