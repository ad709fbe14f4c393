// file: internals/route/details/transaction_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionController "artsfest_backend/internals/features/payments/transactions/controller"
	userController "artsfest_backend/internals/features/users/auth/controller"
)

// TransactionAdminRoutes: kas festival hanya untuk admin.
func TransactionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := transactionController.NewTransactionController(db)

	r.Get("/transactions", ctl.GetAll)
	r.Get("/transactions/stats", ctl.GetStats)
	r.Post("/transactions", ctl.Create)
	r.Delete("/transactions/:id", ctl.Delete)
}

// UserAdminRoutes: admin membuat akun panitia/captain/scorer.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	r.Post("/users", ctl.Register)
}
