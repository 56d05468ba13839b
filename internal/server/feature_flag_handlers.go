package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags handles GET /api/flags. It returns the configured flags
// and their evaluated state for the current user.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(currentUserID(c)),
	})
}
