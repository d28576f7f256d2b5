package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/models"
	"github.com/wiradarma21/travel_booking/session"
)

// Protected requires a signed-in session. Inconsistent session state is
// self-healed (cleared) before the check, so a half-written record forces a
// fresh login instead of limping along.
func Protected(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions.Fix()

		if !sessions.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Not signed in", "data": nil})
		}
		if sessions.TokenExpired(time.Now()) {
			sessions.Logout()
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Session expired, please sign in again", "data": nil})
		}

		c.Locals("user", *sessions.User())
		return c.Next()
	}
}

func AgentRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(models.User)

		if user.Role != models.RoleAgent {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Agent access required",
			})
		}
		return c.Next()
	}
}

func TouristRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(models.User)

		if user.Role != models.RoleTourist {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Tourist access required",
			})
		}
		return c.Next()
	}
}
