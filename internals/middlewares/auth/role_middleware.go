package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles menolak request jika role di token tidak ada di daftar.
// Dipasang SETELAH AuthJWT.
func RequireRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": message,
			})
		}
		return c.Next()
	}
}
