package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Keys di c.Locals yang dihydrate middleware ini.
const (
	LocUserID = "user_id"
	LocRole   = "role"
	LocTeamID = "team_id"
	LocClaims = "jwt_claims"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals(LocClaims, claims)

		if sub := strClaim(claims, "sub"); sub != "" {
			c.Locals(LocUserID, sub)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(LocRole, role)
		}
		// team_id hanya ada untuk captain
		if tid := strClaim(claims, "team_id"); tid != "" {
			c.Locals(LocTeamID, tid)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
