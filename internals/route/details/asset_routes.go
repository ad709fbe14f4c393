// file: internals/route/details/asset_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetController "artsfest_backend/internals/features/assets/controller"
	"artsfest_backend/internals/middlewares"
)

// AssetPublicRoutes: frontend membaca aset tanpa login.
func AssetPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assetController.NewSiteAssetController(db)

	r.Get("/assets", ctl.GetAll)
}

// AssetAdminRoutes: mutasi aset hanya admin.
func AssetAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assetController.NewSiteAssetController(db)

	r.Put("/assets/:key", ctl.SetValue)
	r.Post("/assets/:key/upload", middlewares.UploadRateLimiter(), ctl.UploadImage)
	r.Delete("/assets/:key", ctl.Delete)
}
