// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsfest_backend/internals/configs"
	"artsfest_backend/internals/constants"
	authMw "artsfest_backend/internals/middlewares/auth"
	routeDetails "artsfest_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.LeaderboardPublicRoutes(public, db)
	routeDetails.AssetPublicRoutes(public, db)

	// ===================== PRIVATE (semua role login) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.FestivalUserRoutes(private, db)
	routeDetails.ReportUserRoutes(private, db)

	// ===================== STAFF (admin + scorer) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/s",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.RequireRoles(constants.RoleErrorStaff("pencatatan hasil"), constants.StaffRoles...),
	)
	routeDetails.ScoringStaffRoutes(staff, db)
	routeDetails.FestivalStaffRoutes(staff, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.RequireRoles(constants.RoleErrorAdmin("administrasi festival"), constants.RoleAdmin),
	)
	routeDetails.FestivalAdminRoutes(admin, db)
	routeDetails.ScoringAdminRoutes(admin, db)
	routeDetails.ReportAdminRoutes(admin, db)
	routeDetails.AssetAdminRoutes(admin, db)
	routeDetails.TransactionAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	log.Println("[INFO] All routes ready.")
}
