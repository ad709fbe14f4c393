package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"artsfest_backend/internals/constants"
	authmw "artsfest_backend/internals/middlewares/auth"
)

// GetUserUUID mengambil user_id dari locals hasil AuthJWT.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(authmw.LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid di token")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(authmw.LocRole).(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsScorer(c *fiber.Ctx) bool  { return GetRole(c) == constants.RoleScorer }
func IsCaptain(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleCaptain }

// GetTeamUUID mengambil team_id captain dari token. uuid.Nil + false jika
// tidak ada (mis. admin tanpa tim) — caller memperlakukannya sebagai empty
// state, bukan error.
func GetTeamUUID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw, _ := c.Locals(authmw.LocTeamID).(string)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
