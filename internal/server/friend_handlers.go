package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.ListFriends(c.Context(), currentUserID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(friends)
}

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	toUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	friendship, fact, err := s.friendService.SendRequest(c.Context(), userID, toUserID)
	if err != nil {
		return respond(c, err)
	}
	// The addressee gets the request on their own channel as well as the
	// broadcast channel.
	if fact != nil {
		s.publishUserFact(c.UserContext(), toUserID, fact)
	}

	// A no-op (self-request or existing pair) still answers with the
	// settled state rather than an error.
	if friendship == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.ListIncomingRequests(c.Context(), currentUserID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	friendship, err := s.friendService.AcceptRequest(c.Context(), requestID, userID)
	if err != nil {
		return respond(c, err)
	}
	// Unknown ids and requests the caller is not a party to both answer
	// 204, so request ids cannot be enumerated by strangers.
	if friendship == nil || (friendship.RequesterID != userID && friendship.AddresseeID != userID) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(friendship)
}

// CancelFriendRequest handles DELETE /api/friends/requests/:userId
func (s *Server) CancelFriendRequest(c *fiber.Ctx) error {
	toUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.CancelRequest(c.Context(), currentUserID(c), toUserID); err != nil {
		return respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFriendshipStatus handles GET /api/friends/status/:userId
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	subjectID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	status, err := s.friendService.GetStatus(c.Context(), currentUserID(c), subjectID)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(status)
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	otherUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.RemoveFriendship(c.Context(), currentUserID(c), otherUserID); err != nil {
		return respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
