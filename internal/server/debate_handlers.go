package server

import (
	"time"

	"mindscape/internal/models"
	"mindscape/internal/service"

	"github.com/gofiber/fiber/v2"
)

type debateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	WeekStart   string `json:"week_start"`
	PostID      *uint  `json:"post_id"`
	Active      *bool  `json:"active"`
	Provision   bool   `json:"provision"`
}

// parseWeekStart accepts a date in YYYY-MM-DD form.
func parseWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

// CreateDebate handles POST /api/debates
func (s *Server) CreateDebate(c *fiber.Ctx) error {
	var req debateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	weekStart, err := parseWeekStart(req.WeekStart)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("week_start must be a date in YYYY-MM-DD form"))
	}

	isModerator, err := s.moderatorFlag(c)
	if err != nil {
		return respond(c, err)
	}

	debate, err := s.debateService.CreateDebate(c.Context(), service.CreateDebateInput{
		ActorID:     currentUserID(c),
		IsModerator: isModerator,
		Title:       req.Title,
		Description: req.Description,
		WeekStart:   weekStart,
		PostID:      req.PostID,
		Provision:   req.Provision,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(debate)
}

// GetDebates handles GET /api/debates
func (s *Server) GetDebates(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	includeDeleted := false
	if userID, ok := s.optionalUserID(c); ok && c.QueryBool("include_deleted") {
		mod, err := s.userService.IsModerator(c.Context(), userID)
		if err != nil {
			return respond(c, err)
		}
		includeDeleted = mod
	}

	debates, err := s.debateService.ListDebates(c.Context(), service.ListDebatesInput{
		Limit:          page.Limit,
		Offset:         page.Offset,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(debates)
}

// GetDebate handles GET /api/debates/:id
func (s *Server) GetDebate(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	debate, err := s.debateService.GetDebate(c.Context(), id)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(debate)
}

// UpdateDebate handles PUT /api/debates/:id
func (s *Server) UpdateDebate(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req debateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	weekStart, err := parseWeekStart(req.WeekStart)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("week_start must be a date in YYYY-MM-DD form"))
	}

	isModerator, err := s.moderatorFlag(c)
	if err != nil {
		return respond(c, err)
	}

	debate, err := s.debateService.UpdateDebate(c.Context(), service.UpdateDebateInput{
		DebateID:    id,
		ActorID:     currentUserID(c),
		IsModerator: isModerator,
		Title:       req.Title,
		Description: req.Description,
		WeekStart:   weekStart,
		PostID:      req.PostID,
		Active:      req.Active,
	})
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(debate)
}

// DeleteDebate handles DELETE /api/debates/:id
func (s *Server) DeleteDebate(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	isModerator, err := s.moderatorFlag(c)
	if err != nil {
		return respond(c, err)
	}

	if err := s.debateService.DeleteDebate(c.Context(), id, currentUserID(c), isModerator); err != nil {
		return respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
