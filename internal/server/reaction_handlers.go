package server

import (
	"mindscape/internal/models"
	"mindscape/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.setReaction(c, models.ReactionLike, true)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	return s.setReaction(c, models.ReactionLike, false)
}

// DislikePost handles POST /api/posts/:id/dislike
func (s *Server) DislikePost(c *fiber.Ctx) error {
	return s.setReaction(c, models.ReactionDislike, true)
}

// UndislikePost handles DELETE /api/posts/:id/dislike
func (s *Server) UndislikePost(c *fiber.Ctx) error {
	return s.setReaction(c, models.ReactionDislike, false)
}

func (s *Server) setReaction(c *fiber.Ctx, kind models.ReactionKind, desired bool) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	state, fact, err := s.reactionService.SetReaction(c.Context(), service.SetReactionInput{
		PostID:  postID,
		UserID:  userID,
		Kind:    kind,
		Desired: desired,
	})
	if err != nil {
		return respond(c, err)
	}
	if fact != nil {
		s.publishFact(c.UserContext(), fact)
	}

	counts, err := s.reactionService.GetCounts(c.Context(), postID)
	if err != nil {
		return respond(c, err)
	}

	return c.JSON(fiber.Map{
		"counts": counts,
		"viewer": state,
	})
}

// GetReactions handles GET /api/posts/:id/reactions
func (s *Server) GetReactions(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	counts, err := s.reactionService.GetCounts(c.Context(), postID)
	if err != nil {
		return respond(c, err)
	}

	response := fiber.Map{"counts": counts}
	if userID, ok := s.optionalUserID(c); ok {
		state, err := s.reactionService.GetViewerState(c.Context(), postID, userID)
		if err != nil {
			return respond(c, err)
		}
		response["viewer"] = state
	}

	return c.JSON(response)
}
