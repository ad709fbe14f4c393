// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsfest_backend/internals/configs"
	authController "artsfest_backend/internals/features/users/auth/controller"
	"artsfest_backend/internals/middlewares"
	authMw "artsfest_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint auth publik + yang butuh sesi.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
	auth.Post("/logout", ctl.Logout)

	secured := auth.Group("/",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	secured.Get("/me", ctl.Me)
	secured.Post("/change-password", ctl.ChangePassword)
}
