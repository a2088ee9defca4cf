package middleware

import (
	"eduflow/backend/config"
	"eduflow/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is where AuthMiddleware stores the authenticated user id on
// the request context.
const UserIDKey = "user_id"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
