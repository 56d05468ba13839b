package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	views, err := s.feedService.AssembleFeed(c.Context(), viewerID, page.Limit, page.Offset)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(views)
}

// GetProfileFeed handles GET /api/users/:id/feed
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	subjectID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	feed, err := s.feedService.AssembleProfileFeed(c.Context(), subjectID, viewerID, page.Limit, page.Offset)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(feed)
}
