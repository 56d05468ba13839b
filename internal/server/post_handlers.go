package server

import (
	"mindscape/internal/models"
	"mindscape/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, fact, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		return respond(c, err)
	}
	if fact != nil {
		s.publishFact(c.UserContext(), fact)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts. Moderators may pass include_deleted=true
// to see hidden records.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	includeDeleted := false
	if c.QueryBool("include_deleted") && userID != 0 {
		mod, err := s.userService.IsModerator(c.Context(), userID)
		if err != nil {
			return respond(c, err)
		}
		includeDeleted = mod
	}

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:          page.Limit,
		Offset:         page.Offset,
		CurrentUserID:  userID,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPost(c.Context(), id, userID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	isModerator, err := s.moderatorFlag(c)
	if err != nil {
		return respond(c, err)
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		PostID:      id,
		EditorID:    userID,
		Content:     req.Content,
		IsModerator: isModerator,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	isModerator, err := s.moderatorFlag(c)
	if err != nil {
		return respond(c, err)
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		PostID:      id,
		ActorID:     userID,
		IsModerator: isModerator,
	}); err != nil {
		return respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
