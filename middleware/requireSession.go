package middleware

import (
	"plot-sales-backend/session"

	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects dashboard requests while the admin is logged out.
// Every view and input event behind it assumes an open session.
func RequireSession(m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.Snapshot().Status != session.LoggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Sign in to access the admin portal",
			})
		}
		return c.Next()
	}
}
